// Package sqlstore implements the persistence layer on database/sql with two
// interchangeable backends: an embedded SQLite file and a networked
// PostgreSQL server. Queries are written once with `?` placeholders and
// rebound per dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"go-portfolio-backend/internal/domain"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Store wraps the shared connection handle plus the dialect it speaks.
type Store struct {
	DB      *sql.DB
	dialect string
}

// Options selects and configures a backend.
type Options struct {
	Driver      string // "sqlite" or "postgres"
	DatabaseURL string // postgres only
	SQLitePath  string // sqlite only
}

// Open connects to the selected backend and verifies the connection.
func Open(ctx context.Context, opts Options) (*Store, error) {
	var (
		db  *sql.DB
		err error
	)

	switch opts.Driver {
	case DialectSQLite, "":
		if err := os.MkdirAll(filepath.Dir(opts.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		dsn := "file:" + opts.SQLitePath +
			"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// The sqlite driver serializes writes; a single connection avoids
		// SQLITE_BUSY under concurrent handlers.
		db.SetMaxOpenConns(1)
		opts.Driver = DialectSQLite

	case DialectPostgres:
		db, err = sql.Open("pgx", opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)

	default:
		return nil, fmt.Errorf("unsupported DB driver %q", opts.Driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", opts.Driver, err)
	}

	return &Store{DB: db, dialect: opts.Driver}, nil
}

func (s *Store) Dialect() string { return s.dialect }

func (s *Store) Close() error { return s.DB.Close() }

// HealthCheck reports whether the backend answers within the deadline.
func (s *Store) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.DB.PingContext(ctx)
}

// Rebind rewrites `?` placeholders to `$1..$n` for postgres. SQLite takes
// the query unchanged.
func (s *Store) Rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := s.DB.ExecContext(ctx, s.Rebind(query), args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	return res, nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := s.DB.QueryContext(ctx, s.Rebind(query), args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.DB.QueryRowContext(ctx, s.Rebind(query), args...)
}

// wrapErr maps driver errors onto the domain sentinels. Row absence becomes
// ErrNotFound; everything else is flattened into ErrStorage so callers never
// branch on backend-specific failures.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}

// Timestamps are stored as RFC3339 UTC text on both backends so a database
// file can move between them without a conversion pass.

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func parseTime(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func toNull(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
