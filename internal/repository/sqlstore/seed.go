package sqlstore

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SeedOptions controls initial data. AdminPassword empty skips the admin
// account entirely rather than seeding a known default.
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

// Seed inserts the admin account and the singleton profile row (id = 1) if
// they do not exist yet. Existing rows are never overwritten.
func (s *Store) Seed(ctx context.Context, opts SeedOptions) error {
	if opts.AdminPassword != "" {
		var count int64
		err := s.queryRow(ctx,
			`SELECT COUNT(*) FROM users WHERE email = ?`, opts.AdminEmail,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		if count == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), 12)
			if err != nil {
				return fmt.Errorf("seed admin: hash password: %w", err)
			}
			_, err = s.exec(ctx,
				`INSERT INTO users (email, password, role, created_at) VALUES (?, ?, 'admin', ?)`,
				opts.AdminEmail, string(hash), now(),
			)
			if err != nil {
				return fmt.Errorf("seed admin: %w", err)
			}
		}
	}

	var count int64
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM profile WHERE id = 1`).Scan(&count); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	if count == 0 {
		ts := now()
		_, err := s.exec(ctx,
			`INSERT INTO profile (id, name, title, years_experience, available, created_at, updated_at)
			 VALUES (1, 'Your Name', 'Software Developer', 0, TRUE, ?, ?)`,
			ts, ts,
		)
		if err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
	}
	return nil
}
