package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type testimonialUsecase struct {
	testimonialRepo domain.TestimonialRepository
}

func NewTestimonialUsecase(testimonialRepo domain.TestimonialRepository) domain.TestimonialUsecase {
	return &testimonialUsecase{testimonialRepo: testimonialRepo}
}

func (u *testimonialUsecase) List(ctx context.Context) ([]domain.Testimonial, error) {
	return u.testimonialRepo.FetchActive(ctx)
}

func (u *testimonialUsecase) Create(ctx context.Context, input domain.TestimonialInput) (*domain.Testimonial, error) {
	testimonial := &domain.Testimonial{
		Name:        input.Name,
		Position:    input.Position,
		Company:     input.Company,
		Content:     input.Content,
		Rating:      5,
		Image:       input.Image,
		LinkedinURL: input.LinkedinURL,
		Active:      true,
		Featured:    input.Featured,
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.Active != nil {
		testimonial.Active = *input.Active
	}
	if err := u.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (u *testimonialUsecase) Update(ctx context.Context, id int64, input domain.TestimonialInput) (*domain.Testimonial, error) {
	testimonial, err := u.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Testimonial not found")
		}
		return nil, err
	}

	testimonial.Name = input.Name
	testimonial.Position = input.Position
	testimonial.Company = input.Company
	testimonial.Content = input.Content
	testimonial.Image = input.Image
	testimonial.LinkedinURL = input.LinkedinURL
	testimonial.Featured = input.Featured
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.Active != nil {
		testimonial.Active = *input.Active
	}

	if err := u.testimonialRepo.Update(ctx, testimonial); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Testimonial not found")
		}
		return nil, err
	}
	return testimonial, nil
}

func (u *testimonialUsecase) Delete(ctx context.Context, id int64) error {
	return u.testimonialRepo.Delete(ctx, id)
}
