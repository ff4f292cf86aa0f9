package sqlstore

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

type statsRepo struct {
	store *Store
}

func NewStatsRepository(store *Store) domain.StatsRepository {
	return &statsRepo{store: store}
}

func (r *statsRepo) Public(ctx context.Context) (*domain.PublicStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM projects WHERE active = TRUE),
		(SELECT COUNT(*) FROM skills WHERE active = TRUE),
		(SELECT COUNT(*) FROM certifications WHERE active = TRUE),
		COALESCE((SELECT years_experience FROM profile WHERE id = 1), 0)`
	var s domain.PublicStats
	err := r.store.queryRow(ctx, query).Scan(
		&s.Projects, &s.Skills, &s.Certifications, &s.YearsExperience,
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &s, nil
}

func (r *statsRepo) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM projects),
		(SELECT COUNT(*) FROM skills),
		(SELECT COUNT(*) FROM experiences),
		(SELECT COUNT(*) FROM certifications),
		(SELECT COUNT(*) FROM testimonials),
		(SELECT COUNT(*) FROM contact_messages),
		(SELECT COUNT(*) FROM contact_messages WHERE status = 'unread')`
	var s domain.DashboardStats
	err := r.store.queryRow(ctx, query).Scan(
		&s.Projects, &s.Skills, &s.Experiences, &s.Certifications,
		&s.Testimonials, &s.Messages, &s.UnreadMessages,
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &s, nil
}
