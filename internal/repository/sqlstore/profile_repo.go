package sqlstore

import (
	"context"
	"database/sql"

	"go-portfolio-backend/internal/domain"
)

type profileRepo struct {
	store *Store
}

func NewProfileRepository(store *Store) domain.ProfileRepository {
	return &profileRepo{store: store}
}

const profileColumns = `id, name, title, summary, bio, photo, cv_file, email, phone,
	location, linkedin, github, years_experience, available, created_at, updated_at`

func (r *profileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profile WHERE id = 1`
	var (
		p                                                   domain.Profile
		summary, bio, photo, cvFile, email, phone, location sql.NullString
		linkedin, github                                    sql.NullString
		createdAt, updatedAt                                string
	)
	err := r.store.queryRow(ctx, query).Scan(
		&p.ID, &p.Name, &p.Title, &summary, &bio, &photo, &cvFile, &email, &phone,
		&location, &linkedin, &github, &p.YearsExperience, &p.Available,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	p.Summary = fromNull(summary)
	p.Bio = fromNull(bio)
	p.Photo = fromNull(photo)
	p.CVFile = fromNull(cvFile)
	p.Email = fromNull(email)
	p.Phone = fromNull(phone)
	p.Location = fromNull(location)
	p.LinkedIn = fromNull(linkedin)
	p.GitHub = fromNull(github)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, req domain.UpdateProfileRequest) error {
	query := `UPDATE profile SET
		name = ?, title = ?, summary = ?, bio = ?, email = ?, phone = ?,
		location = ?, linkedin = ?, github = ?,
		years_experience = COALESCE(CAST(? AS INTEGER), years_experience),
		available = COALESCE(CAST(? AS BOOLEAN), available),
		updated_at = ?
	WHERE id = 1`

	var years any
	if req.YearsExperience != nil {
		years = *req.YearsExperience
	}
	var available any
	if req.Available != nil {
		available = *req.Available
	}

	res, err := r.store.exec(ctx, query,
		req.Name, req.Title, toNull(req.Summary), toNull(req.Bio), toNull(req.Email),
		toNull(req.Phone), toNull(req.Location), toNull(req.LinkedIn), toNull(req.GitHub),
		years, available, now(),
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) SetPhoto(ctx context.Context, filename string) error {
	res, err := r.store.exec(ctx,
		`UPDATE profile SET photo = ?, updated_at = ? WHERE id = 1`, filename, now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) SetCV(ctx context.Context, filename string) error {
	res, err := r.store.exec(ctx,
		`UPDATE profile SET cv_file = ?, updated_at = ? WHERE id = 1`, filename, now())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
