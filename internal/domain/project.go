package domain

import (
	"context"
	"time"
)

type Project struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	LongDescription *string    `json:"long_description"`
	Image           *string    `json:"image"`
	DemoURL         *string    `json:"demo_url"`
	GithubURL       *string    `json:"github_url"`
	Category        string     `json:"category"`
	Technologies    StringList `json:"technologies"`
	Status          string     `json:"status"`
	Featured        bool       `json:"featured"`
	Active          bool       `json:"active"`
	StartDate       *string    `json:"start_date"`
	EndDate         *string    `json:"end_date"`
	Client          *string    `json:"client"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ProjectInput is the write shape shared by create and update. Technologies
// arrives either as a JSON array or a comma-separated string; handlers decode
// it into a StringList before it reaches the usecase.
type ProjectInput struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	LongDescription *string    `json:"long_description"`
	DemoURL         *string    `json:"demo_url"`
	GithubURL       *string    `json:"github_url"`
	Category        string     `json:"category" binding:"required"`
	Technologies    StringList `json:"technologies"`
	Status          string     `json:"status"`
	Featured        bool       `json:"featured"`
	Active          *bool      `json:"active"`
	StartDate       *string    `json:"start_date"`
	EndDate         *string    `json:"end_date"`
	Client          *string    `json:"client"`
}

// ProjectFilter narrows public listings. Category "all" (or empty) matches
// everything; FeaturedOnly keeps only featured rows.
type ProjectFilter struct {
	Category     string
	FeaturedOnly bool
}

type ProjectRepository interface {
	Fetch(ctx context.Context, filter ProjectFilter) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, p *Project) error
	// Update persists all mutable columns; the image column is only written
	// when setImage is true.
	Update(ctx context.Context, p *Project, setImage bool) error
	Delete(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	Get(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, input ProjectInput, image *FileUpload) (*Project, error)
	Update(ctx context.Context, id int64, input ProjectInput, image *FileUpload) (*Project, error)
	Delete(ctx context.Context, id int64) error
}
