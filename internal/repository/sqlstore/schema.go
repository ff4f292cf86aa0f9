package sqlstore

import (
	"context"
	"fmt"
)

// Migrate creates the full schema. Every statement is idempotent so Migrate
// runs unconditionally at startup on both backends.
func (s *Store) Migrate(ctx context.Context) error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.dialect == DialectPostgres {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'admin',
			created_at TEXT NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS profile (
			id %s,
			name TEXT NOT NULL,
			title TEXT NOT NULL,
			summary TEXT,
			bio TEXT,
			photo TEXT,
			cv_file TEXT,
			email TEXT,
			phone TEXT,
			location TEXT,
			linkedin TEXT,
			github TEXT,
			years_experience INTEGER NOT NULL DEFAULT 0,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS projects (
			id %s,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			long_description TEXT,
			image TEXT,
			demo_url TEXT,
			github_url TEXT,
			category TEXT NOT NULL,
			technologies TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'completed',
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			start_date TEXT,
			end_date TEXT,
			client TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS skills (
			id %s,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 80,
			icon TEXT,
			is_main_stack BOOLEAN NOT NULL DEFAULT FALSE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS experiences (
			id %s,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			location TEXT,
			start_date TEXT NOT NULL,
			end_date TEXT,
			current BOOLEAN NOT NULL DEFAULT FALSE,
			description TEXT,
			technologies TEXT NOT NULL DEFAULT '[]',
			achievements TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS certifications (
			id %s,
			name TEXT NOT NULL,
			issuer TEXT NOT NULL,
			issue_date TEXT,
			expiry_date TEXT,
			credential_id TEXT,
			credential_url TEXT,
			image TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS testimonials (
			id %s,
			name TEXT NOT NULL,
			position TEXT,
			company TEXT,
			content TEXT NOT NULL,
			rating INTEGER NOT NULL DEFAULT 5,
			image TEXT,
			linkedin_url TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS contact_messages (
			id %s,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT,
			message TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'unread',
			replied BOOLEAN NOT NULL DEFAULT FALSE,
			ip_address TEXT,
			user_agent TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`, pk),

		`CREATE INDEX IF NOT EXISTS idx_projects_category ON projects(category)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_featured ON projects(featured)`,
		`CREATE INDEX IF NOT EXISTS idx_skills_category ON skills(category)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_status ON contact_messages(status)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
