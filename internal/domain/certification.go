package domain

import (
	"context"
	"time"
)

type Certification struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer"`
	IssueDate     *string   `json:"issue_date"`
	ExpiryDate    *string   `json:"expiry_date"`
	CredentialID  *string   `json:"credential_id"`
	CredentialURL *string   `json:"credential_url"`
	Image         *string   `json:"image"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

type CertificationInput struct {
	Name          string  `json:"name" binding:"required"`
	Issuer        string  `json:"issuer" binding:"required"`
	IssueDate     *string `json:"issue_date"`
	ExpiryDate    *string `json:"expiry_date"`
	CredentialID  *string `json:"credential_id"`
	CredentialURL *string `json:"credential_url"`
	Image         *string `json:"image"`
	Active        *bool   `json:"active"`
}

type CertificationRepository interface {
	FetchActive(ctx context.Context) ([]Certification, error)
	GetByID(ctx context.Context, id int64) (*Certification, error)
	Create(ctx context.Context, c *Certification) error
	Update(ctx context.Context, c *Certification) error
	Delete(ctx context.Context, id int64) error
}

type CertificationUsecase interface {
	List(ctx context.Context) ([]Certification, error)
	Create(ctx context.Context, input CertificationInput) (*Certification, error)
	Update(ctx context.Context, id int64, input CertificationInput) (*Certification, error)
	Delete(ctx context.Context, id int64) error
}
