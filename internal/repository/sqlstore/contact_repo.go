package sqlstore

import (
	"context"
	"database/sql"

	"go-portfolio-backend/internal/domain"
)

type contactRepo struct {
	store *Store
}

func NewContactRepository(store *Store) domain.ContactRepository {
	return &contactRepo{store: store}
}

const contactColumns = `id, name, email, subject, message, status, replied, ip_address,
	user_agent, created_at, updated_at`

func (r *contactRepo) scan(row interface{ Scan(...any) error }) (*domain.ContactMessage, error) {
	var (
		m                             domain.ContactMessage
		subject, ipAddress, userAgent sql.NullString
		createdAt, updatedAt          string
	)
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &subject, &m.Message, &m.Status, &m.Replied,
		&ipAddress, &userAgent, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Subject = fromNull(subject)
	m.IPAddress = fromNull(ipAddress)
	m.UserAgent = fromNull(userAgent)
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}

func (r *contactRepo) Create(ctx context.Context, m *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, subject, message, status, replied,
		ip_address, user_agent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`
	ts := now()
	err := r.store.queryRow(ctx, query,
		m.Name, m.Email, toNull(m.Subject), m.Message, m.Status, m.Replied,
		toNull(m.IPAddress), toNull(m.UserAgent), ts, ts,
	).Scan(&m.ID)
	if err != nil {
		return wrapErr(err)
	}
	m.CreatedAt = parseTime(ts)
	m.UpdatedAt = m.CreatedAt
	return nil
}

// Fetch pages newest-first. The status predicate is shared between the page
// query and the count so the two can never disagree.
func (r *contactRepo) Fetch(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactMessage, int64, error) {
	where := ``
	args := []any{}
	if filter.Status != "" && filter.Status != "all" {
		where = ` WHERE status = ?`
		args = append(args, filter.Status)
	}

	var total int64
	err := r.store.queryRow(ctx, `SELECT COUNT(*) FROM contact_messages`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	query := `SELECT ` + contactColumns + ` FROM contact_messages` + where +
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	offset := (filter.Page - 1) * filter.Limit
	pageArgs := append(args, filter.Limit, offset)

	rows, err := r.store.query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	messages := make([]domain.ContactMessage, 0)
	for rows.Next() {
		m, err := r.scan(rows)
		if err != nil {
			return nil, 0, wrapErr(err)
		}
		messages = append(messages, *m)
	}
	return messages, total, wrapErr(rows.Err())
}

func (r *contactRepo) MarkRead(ctx context.Context, id int64) error {
	_, err := r.store.exec(ctx,
		`UPDATE contact_messages SET status = ?, updated_at = ? WHERE id = ?`,
		domain.ContactStatusRead, now(), id)
	return err
}

func (r *contactRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.store.exec(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	return err
}
