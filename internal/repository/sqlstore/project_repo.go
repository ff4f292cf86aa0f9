package sqlstore

import (
	"context"
	"database/sql"

	"go-portfolio-backend/internal/domain"
)

type projectRepo struct {
	store *Store
}

func NewProjectRepository(store *Store) domain.ProjectRepository {
	return &projectRepo{store: store}
}

const projectColumns = `id, title, description, long_description, image, demo_url, github_url,
	category, technologies, status, featured, active, start_date, end_date, client,
	created_at, updated_at`

func (r *projectRepo) scan(row interface{ Scan(...any) error }) (*domain.Project, error) {
	var (
		p                                   domain.Project
		longDesc, image, demoURL, githubURL sql.NullString
		technologies                        string
		startDate, endDate, client          sql.NullString
		createdAt, updatedAt                string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &longDesc, &image, &demoURL, &githubURL,
		&p.Category, &technologies, &p.Status, &p.Featured, &p.Active,
		&startDate, &endDate, &client, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.LongDescription = fromNull(longDesc)
	p.Image = fromNull(image)
	p.DemoURL = fromNull(demoURL)
	p.GithubURL = fromNull(githubURL)
	p.Technologies = domain.DecodeStringList(technologies)
	p.StartDate = fromNull(startDate)
	p.EndDate = fromNull(endDate)
	p.Client = fromNull(client)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

func (r *projectRepo) Fetch(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE active = TRUE`
	args := []any{}
	if filter.Category != "" && filter.Category != "all" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.FeaturedOnly {
		query += ` AND featured = TRUE`
	}
	query += ` ORDER BY featured DESC, created_at DESC`

	rows, err := r.store.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		projects = append(projects, *p)
	}
	return projects, wrapErr(rows.Err())
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := r.scan(r.store.queryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr(err)
	}
	return p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (title, description, long_description, image, demo_url,
		github_url, category, technologies, status, featured, active, start_date, end_date,
		client, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`
	ts := now()
	err := r.store.queryRow(ctx, query,
		p.Title, p.Description, toNull(p.LongDescription), toNull(p.Image),
		toNull(p.DemoURL), toNull(p.GithubURL), p.Category, p.Technologies.Encode(),
		p.Status, p.Featured, p.Active, toNull(p.StartDate), toNull(p.EndDate),
		toNull(p.Client), ts, ts,
	).Scan(&p.ID)
	if err != nil {
		return wrapErr(err)
	}
	p.CreatedAt = parseTime(ts)
	p.UpdatedAt = p.CreatedAt
	return nil
}

func (r *projectRepo) Update(ctx context.Context, p *domain.Project, setImage bool) error {
	query := `UPDATE projects SET title = ?, description = ?, long_description = ?,
		demo_url = ?, github_url = ?, category = ?, technologies = ?, status = ?,
		featured = ?, active = ?, start_date = ?, end_date = ?, client = ?, updated_at = ?`
	args := []any{
		p.Title, p.Description, toNull(p.LongDescription),
		toNull(p.DemoURL), toNull(p.GithubURL), p.Category, p.Technologies.Encode(),
		p.Status, p.Featured, p.Active, toNull(p.StartDate), toNull(p.EndDate),
		toNull(p.Client), now(),
	}
	if setImage {
		query += `, image = ?`
		args = append(args, toNull(p.Image))
	}
	query += ` WHERE id = ?`
	args = append(args, p.ID)

	res, err := r.store.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.store.exec(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}
