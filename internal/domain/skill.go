package domain

import (
	"context"
	"time"
)

type Skill struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Level       int       `json:"level"`
	Icon        *string   `json:"icon"`
	IsMainStack bool      `json:"is_main_stack"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type SkillInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Level       *int    `json:"level" binding:"omitempty,min=0,max=100"`
	Icon        *string `json:"icon"`
	IsMainStack bool    `json:"is_main_stack"`
	Active      *bool   `json:"active"`
}

type SkillRepository interface {
	FetchActive(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id int64) error
}

type SkillUsecase interface {
	List(ctx context.Context) ([]Skill, error)
	// Grouped buckets active skills by category, preserving the repository
	// ordering inside each bucket.
	Grouped(ctx context.Context) (map[string][]Skill, error)
	Create(ctx context.Context, input SkillInput) (*Skill, error)
	Update(ctx context.Context, id int64, input SkillInput) (*Skill, error)
	Delete(ctx context.Context, id int64) error
}
