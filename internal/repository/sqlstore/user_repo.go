package sqlstore

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password, role, created_at FROM users WHERE email = ?`
	var (
		u         domain.User
		createdAt string
	)
	err := r.store.queryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &createdAt,
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, email, password, role, created_at FROM users WHERE id = ?`
	var (
		u         domain.User
		createdAt string
	)
	err := r.store.queryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &createdAt,
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password, role, created_at) VALUES (?, ?, ?, ?) RETURNING id`
	ts := now()
	err := r.store.queryRow(ctx, query, u.Email, u.PasswordHash, u.Role, ts).Scan(&u.ID)
	if err != nil {
		return wrapErr(err)
	}
	u.CreatedAt = parseTime(ts)
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.store.exec(ctx, `UPDATE users SET password = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
