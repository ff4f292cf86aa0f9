package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

type statsUsecase struct {
	statsRepo domain.StatsRepository
}

func NewStatsUsecase(statsRepo domain.StatsRepository) domain.StatsUsecase {
	return &statsUsecase{statsRepo: statsRepo}
}

func (u *statsUsecase) Public(ctx context.Context) (*domain.PublicStats, error) {
	return u.statsRepo.Public(ctx)
}

func (u *statsUsecase) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return u.statsRepo.Dashboard(ctx)
}
