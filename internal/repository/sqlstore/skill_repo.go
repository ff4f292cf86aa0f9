package sqlstore

import (
	"context"
	"database/sql"

	"go-portfolio-backend/internal/domain"
)

type skillRepo struct {
	store *Store
}

func NewSkillRepository(store *Store) domain.SkillRepository {
	return &skillRepo{store: store}
}

const skillColumns = `id, name, category, level, icon, is_main_stack, active, created_at`

func (r *skillRepo) scan(row interface{ Scan(...any) error }) (*domain.Skill, error) {
	var (
		s         domain.Skill
		icon      sql.NullString
		createdAt string
	)
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &icon, &s.IsMainStack, &s.Active, &createdAt)
	if err != nil {
		return nil, err
	}
	s.Icon = fromNull(icon)
	s.CreatedAt = parseTime(createdAt)
	return &s, nil
}

func (r *skillRepo) FetchActive(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE active = TRUE
		ORDER BY category ASC, level DESC, name ASC`
	rows, err := r.store.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]domain.Skill, 0)
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		skills = append(skills, *s)
	}
	return skills, wrapErr(rows.Err())
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = ?`
	s, err := r.scan(r.store.queryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr(err)
	}
	return s, nil
}

func (r *skillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (name, category, level, icon, is_main_stack, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`
	ts := now()
	err := r.store.queryRow(ctx, query,
		s.Name, s.Category, s.Level, toNull(s.Icon), s.IsMainStack, s.Active, ts,
	).Scan(&s.ID)
	if err != nil {
		return wrapErr(err)
	}
	s.CreatedAt = parseTime(ts)
	return nil
}

func (r *skillRepo) Update(ctx context.Context, s *domain.Skill) error {
	query := `UPDATE skills SET name = ?, category = ?, level = ?, icon = ?,
		is_main_stack = ?, active = ? WHERE id = ?`
	res, err := r.store.exec(ctx, query,
		s.Name, s.Category, s.Level, toNull(s.Icon), s.IsMainStack, s.Active, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.store.exec(ctx, `DELETE FROM skills WHERE id = ?`, id)
	return err
}
