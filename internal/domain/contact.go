package domain

import (
	"context"
	"time"
)

// Contact message lifecycle statuses.
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Replied   bool      `json:"replied"`
	IPAddress *string   `json:"ip_address,omitempty"`
	UserAgent *string   `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Email   string  `json:"email" binding:"required,email"`
	Subject *string `json:"subject" binding:"omitempty,max=200"`
	Message string  `json:"message" binding:"required,max=5000"`
}

// ContactFilter pages the admin inbox. Status "" or "all" matches every row.
type ContactFilter struct {
	Status string
	Page   int
	Limit  int
}

// Pagination echoes the applied paging back to clients.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ContactRepository interface {
	Create(ctx context.Context, m *ContactMessage) error
	// Fetch returns one page of messages plus the total row count for the
	// same filter.
	Fetch(ctx context.Context, filter ContactFilter) ([]ContactMessage, int64, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type ContactUsecase interface {
	Submit(ctx context.Context, req ContactRequest, ipAddress, userAgent string) (*ContactMessage, error)
	List(ctx context.Context, filter ContactFilter) ([]ContactMessage, Pagination, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
