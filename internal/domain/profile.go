package domain

import (
	"context"
	"time"
)

// Profile is the singleton owner record (row id = 1). Photo and CVFile hold
// bare stored filenames; the delivery layer only ever sees the rewritten
// public URLs.
type Profile struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Summary         *string   `json:"summary"`
	Bio             *string   `json:"bio"`
	Photo           *string   `json:"photo"`
	CVFile          *string   `json:"-"`
	CVURL           *string   `json:"cv_url,omitempty"`
	Email           *string   `json:"email"`
	Phone           *string   `json:"phone"`
	Location        *string   `json:"location"`
	LinkedIn        *string   `json:"linkedin"`
	GitHub          *string   `json:"github"`
	YearsExperience int       `json:"years_experience"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Name            string  `json:"name" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Summary         *string `json:"summary"`
	Bio             *string `json:"bio"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone"`
	Location        *string `json:"location"`
	LinkedIn        *string `json:"linkedin"`
	GitHub          *string `json:"github"`
	YearsExperience *int    `json:"years_experience"`
	Available       *bool   `json:"available"`
}

type ProfileRepository interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, req UpdateProfileRequest) error
	SetPhoto(ctx context.Context, filename string) error
	SetCV(ctx context.Context, filename string) error
}

// FileUpload carries a multipart file through the usecase layer without
// exposing the HTTP request there.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

type ProfileUsecase interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, req UpdateProfileRequest) (*Profile, error)
	UploadPhoto(ctx context.Context, file FileUpload) (string, error)
	UploadCV(ctx context.Context, file FileUpload) (string, error)
	// CVPath resolves the absolute filesystem path of the stored CV for
	// download. Returns ErrNotFound when no CV has been uploaded.
	CVPath(ctx context.Context) (string, error)
}
