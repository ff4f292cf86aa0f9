package usecase

import (
	"context"
	"strings"

	"go-portfolio-backend/internal/domain"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type contactUsecase struct {
	contactRepo domain.ContactRepository
}

func NewContactUsecase(contactRepo domain.ContactRepository) domain.ContactUsecase {
	return &contactUsecase{contactRepo: contactRepo}
}

func (u *contactUsecase) Submit(ctx context.Context, req domain.ContactRequest, ipAddress, userAgent string) (*domain.ContactMessage, error) {
	message := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
		Status:  domain.ContactStatusUnread,
	}
	if req.Subject != nil {
		subject := strings.TrimSpace(*req.Subject)
		message.Subject = &subject
	}
	if ipAddress != "" {
		message.IPAddress = &ipAddress
	}
	if userAgent != "" {
		message.UserAgent = &userAgent
	}
	if err := u.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (u *contactUsecase) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactMessage, domain.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	messages, total, err := u.contactRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return messages, domain.Pagination{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

func (u *contactUsecase) MarkRead(ctx context.Context, id int64) error {
	return u.contactRepo.MarkRead(ctx, id)
}

func (u *contactUsecase) Delete(ctx context.Context, id int64) error {
	return u.contactRepo.Delete(ctx, id)
}
