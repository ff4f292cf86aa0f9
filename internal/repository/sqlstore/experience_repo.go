package sqlstore

import (
	"context"
	"database/sql"

	"go-portfolio-backend/internal/domain"
)

type experienceRepo struct {
	store *Store
}

func NewExperienceRepository(store *Store) domain.ExperienceRepository {
	return &experienceRepo{store: store}
}

const experienceColumns = `id, title, company, location, start_date, end_date, current,
	description, technologies, achievements, created_at, updated_at`

func (r *experienceRepo) scan(row interface{ Scan(...any) error }) (*domain.Experience, error) {
	var (
		e                          domain.Experience
		location, endDate, desc    sql.NullString
		technologies, achievements string
		createdAt, updatedAt       string
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Company, &location, &e.StartDate, &endDate, &e.Current,
		&desc, &technologies, &achievements, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Location = fromNull(location)
	e.EndDate = fromNull(endDate)
	e.Description = fromNull(desc)
	e.Technologies = domain.DecodeStringList(technologies)
	e.Achievements = domain.DecodeStringList(achievements)
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return &e, nil
}

func (r *experienceRepo) Fetch(ctx context.Context) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences
		ORDER BY start_date DESC`
	rows, err := r.store.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := make([]domain.Experience, 0)
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		experiences = append(experiences, *e)
	}
	return experiences, wrapErr(rows.Err())
}

func (r *experienceRepo) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = ?`
	e, err := r.scan(r.store.queryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr(err)
	}
	return e, nil
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (title, company, location, start_date, end_date,
		current, description, technologies, achievements, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`
	ts := now()
	err := r.store.queryRow(ctx, query,
		e.Title, e.Company, toNull(e.Location), e.StartDate, toNull(e.EndDate),
		e.Current, toNull(e.Description), e.Technologies.Encode(), e.Achievements.Encode(),
		ts, ts,
	).Scan(&e.ID)
	if err != nil {
		return wrapErr(err)
	}
	e.CreatedAt = parseTime(ts)
	e.UpdatedAt = e.CreatedAt
	return nil
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	query := `UPDATE experiences SET title = ?, company = ?, location = ?, start_date = ?,
		end_date = ?, current = ?, description = ?, technologies = ?, achievements = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.store.exec(ctx, query,
		e.Title, e.Company, toNull(e.Location), e.StartDate, toNull(e.EndDate),
		e.Current, toNull(e.Description), e.Technologies.Encode(), e.Achievements.Encode(),
		now(), e.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.store.exec(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	return err
}
