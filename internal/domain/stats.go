package domain

import "context"

// PublicStats feeds the landing page counters.
type PublicStats struct {
	Projects        int64 `json:"projects"`
	Skills          int64 `json:"skills"`
	Certifications  int64 `json:"certifications"`
	YearsExperience int   `json:"years_experience"`
}

// DashboardStats backs the admin dashboard, including inbox state.
type DashboardStats struct {
	Projects       int64 `json:"projects"`
	Skills         int64 `json:"skills"`
	Experiences    int64 `json:"experiences"`
	Certifications int64 `json:"certifications"`
	Testimonials   int64 `json:"testimonials"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}

type StatsRepository interface {
	Public(ctx context.Context) (*PublicStats, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type StatsUsecase interface {
	Public(ctx context.Context) (*PublicStats, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
