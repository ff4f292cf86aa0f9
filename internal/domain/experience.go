package domain

import (
	"context"
	"time"
)

type Experience struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     *string    `json:"location"`
	StartDate    string     `json:"start_date"`
	EndDate      *string    `json:"end_date"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description"`
	Technologies StringList `json:"technologies"`
	Achievements StringList `json:"achievements"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ExperienceInput struct {
	Title        string     `json:"title" binding:"required"`
	Company      string     `json:"company" binding:"required"`
	Location     *string    `json:"location"`
	StartDate    string     `json:"start_date" binding:"required"`
	EndDate      *string    `json:"end_date"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description"`
	Technologies StringList `json:"technologies"`
	Achievements StringList `json:"achievements"`
}

type ExperienceRepository interface {
	Fetch(ctx context.Context) ([]Experience, error)
	GetByID(ctx context.Context, id int64) (*Experience, error)
	Create(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id int64) error
}

type ExperienceUsecase interface {
	List(ctx context.Context) ([]Experience, error)
	Create(ctx context.Context, input ExperienceInput) (*Experience, error)
	Update(ctx context.Context, id int64, input ExperienceInput) (*Experience, error)
	Delete(ctx context.Context, id int64) error
}
