package sqlstore

import (
	"context"
	"database/sql"

	"go-portfolio-backend/internal/domain"
)

type testimonialRepo struct {
	store *Store
}

func NewTestimonialRepository(store *Store) domain.TestimonialRepository {
	return &testimonialRepo{store: store}
}

const testimonialColumns = `id, name, position, company, content, rating, image,
	linkedin_url, active, featured, created_at`

func (r *testimonialRepo) scan(row interface{ Scan(...any) error }) (*domain.Testimonial, error) {
	var (
		t                                     domain.Testimonial
		position, company, image, linkedinURL sql.NullString
		createdAt                             string
	)
	err := row.Scan(
		&t.ID, &t.Name, &position, &company, &t.Content, &t.Rating, &image,
		&linkedinURL, &t.Active, &t.Featured, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	t.Position = fromNull(position)
	t.Company = fromNull(company)
	t.Image = fromNull(image)
	t.LinkedinURL = fromNull(linkedinURL)
	t.CreatedAt = parseTime(createdAt)
	return &t, nil
}

func (r *testimonialRepo) FetchActive(ctx context.Context) ([]domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE active = TRUE
		ORDER BY featured DESC, created_at DESC`
	rows, err := r.store.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := make([]domain.Testimonial, 0)
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		testimonials = append(testimonials, *t)
	}
	return testimonials, wrapErr(rows.Err())
}

func (r *testimonialRepo) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = ?`
	t, err := r.scan(r.store.queryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr(err)
	}
	return t, nil
}

func (r *testimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `INSERT INTO testimonials (name, position, company, content, rating, image,
		linkedin_url, active, featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`
	ts := now()
	err := r.store.queryRow(ctx, query,
		t.Name, toNull(t.Position), toNull(t.Company), t.Content, t.Rating,
		toNull(t.Image), toNull(t.LinkedinURL), t.Active, t.Featured, ts,
	).Scan(&t.ID)
	if err != nil {
		return wrapErr(err)
	}
	t.CreatedAt = parseTime(ts)
	return nil
}

func (r *testimonialRepo) Update(ctx context.Context, t *domain.Testimonial) error {
	query := `UPDATE testimonials SET name = ?, position = ?, company = ?, content = ?,
		rating = ?, image = ?, linkedin_url = ?, active = ?, featured = ? WHERE id = ?`
	res, err := r.store.exec(ctx, query,
		t.Name, toNull(t.Position), toNull(t.Company), t.Content, t.Rating,
		toNull(t.Image), toNull(t.LinkedinURL), t.Active, t.Featured, t.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *testimonialRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.store.exec(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	return err
}
