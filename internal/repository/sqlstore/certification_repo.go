package sqlstore

import (
	"context"
	"database/sql"

	"go-portfolio-backend/internal/domain"
)

type certificationRepo struct {
	store *Store
}

func NewCertificationRepository(store *Store) domain.CertificationRepository {
	return &certificationRepo{store: store}
}

const certificationColumns = `id, name, issuer, issue_date, expiry_date, credential_id,
	credential_url, image, active, created_at`

func (r *certificationRepo) scan(row interface{ Scan(...any) error }) (*domain.Certification, error) {
	var (
		c                                             domain.Certification
		issueDate, expiryDate, credID, credURL, image sql.NullString
		createdAt                                     string
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Issuer, &issueDate, &expiryDate, &credID, &credURL,
		&image, &c.Active, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	c.IssueDate = fromNull(issueDate)
	c.ExpiryDate = fromNull(expiryDate)
	c.CredentialID = fromNull(credID)
	c.CredentialURL = fromNull(credURL)
	c.Image = fromNull(image)
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

func (r *certificationRepo) FetchActive(ctx context.Context) ([]domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE active = TRUE
		ORDER BY issue_date DESC`
	rows, err := r.store.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := make([]domain.Certification, 0)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		certs = append(certs, *c)
	}
	return certs, wrapErr(rows.Err())
}

func (r *certificationRepo) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = ?`
	c, err := r.scan(r.store.queryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}

func (r *certificationRepo) Create(ctx context.Context, c *domain.Certification) error {
	query := `INSERT INTO certifications (name, issuer, issue_date, expiry_date,
		credential_id, credential_url, image, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`
	ts := now()
	err := r.store.queryRow(ctx, query,
		c.Name, c.Issuer, toNull(c.IssueDate), toNull(c.ExpiryDate),
		toNull(c.CredentialID), toNull(c.CredentialURL), toNull(c.Image), c.Active, ts,
	).Scan(&c.ID)
	if err != nil {
		return wrapErr(err)
	}
	c.CreatedAt = parseTime(ts)
	return nil
}

func (r *certificationRepo) Update(ctx context.Context, c *domain.Certification) error {
	query := `UPDATE certifications SET name = ?, issuer = ?, issue_date = ?,
		expiry_date = ?, credential_id = ?, credential_url = ?, image = ?, active = ?
		WHERE id = ?`
	res, err := r.store.exec(ctx, query,
		c.Name, c.Issuer, toNull(c.IssueDate), toNull(c.ExpiryDate),
		toNull(c.CredentialID), toNull(c.CredentialURL), toNull(c.Image), c.Active, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *certificationRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.store.exec(ctx, `DELETE FROM certifications WHERE id = ?`, id)
	return err
}
