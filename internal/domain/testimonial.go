package domain

import (
	"context"
	"time"
)

type Testimonial struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Position    *string   `json:"position"`
	Company     *string   `json:"company"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	Image       *string   `json:"image"`
	LinkedinURL *string   `json:"linkedin_url"`
	Active      bool      `json:"active"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

type TestimonialInput struct {
	Name        string  `json:"name" binding:"required"`
	Position    *string `json:"position"`
	Company     *string `json:"company"`
	Content     string  `json:"content" binding:"required"`
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Image       *string `json:"image"`
	LinkedinURL *string `json:"linkedin_url"`
	Active      *bool   `json:"active"`
	Featured    bool    `json:"featured"`
}

type TestimonialRepository interface {
	FetchActive(ctx context.Context) ([]Testimonial, error)
	GetByID(ctx context.Context, id int64) (*Testimonial, error)
	Create(ctx context.Context, t *Testimonial) error
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id int64) error
}

type TestimonialUsecase interface {
	List(ctx context.Context) ([]Testimonial, error)
	Create(ctx context.Context, input TestimonialInput) (*Testimonial, error)
	Update(ctx context.Context, id int64, input TestimonialInput) (*Testimonial, error)
	Delete(ctx context.Context, id int64) error
}
