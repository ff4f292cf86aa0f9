package sqlstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go-portfolio-backend/internal/repository/sqlstore"
)

func newTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	store, err := sqlstore.Open(context.Background(), sqlstore.Options{
		Driver:     sqlstore.DialectSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := sqlstore.Open(context.Background(), sqlstore.Options{Driver: "oracle"})
	require.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestHealthCheck(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.HealthCheck(context.Background()))
}

func TestRebind(t *testing.T) {
	store := newTestStore(t)
	// sqlite keeps ? placeholders untouched
	require.Equal(t, "SELECT * FROM t WHERE a = ? AND b = ?",
		store.Rebind("SELECT * FROM t WHERE a = ? AND b = ?"))
}

func TestSeed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	opts := sqlstore.SeedOptions{AdminEmail: "admin@test.dev", AdminPassword: "s3cret-pass"}
	require.NoError(t, store.Seed(ctx, opts))

	// Running twice must not duplicate rows.
	require.NoError(t, store.Seed(ctx, opts))

	var users, profiles int
	require.NoError(t, store.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users))
	require.NoError(t, store.DB.QueryRow(`SELECT COUNT(*) FROM profile`).Scan(&profiles))
	require.Equal(t, 1, users)
	require.Equal(t, 1, profiles)

	// Password is stored hashed, never verbatim.
	var hash string
	require.NoError(t, store.DB.QueryRow(`SELECT password FROM users`).Scan(&hash))
	require.NotEqual(t, "s3cret-pass", hash)
	require.NotEmpty(t, hash)
}

func TestSeedSkipsAdminWithoutPassword(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Seed(context.Background(), sqlstore.SeedOptions{AdminEmail: "admin@test.dev"}))

	var users int
	require.NoError(t, store.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users))
	require.Equal(t, 0, users)
}
