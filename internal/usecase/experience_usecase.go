package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type experienceUsecase struct {
	experienceRepo domain.ExperienceRepository
}

func NewExperienceUsecase(experienceRepo domain.ExperienceRepository) domain.ExperienceUsecase {
	return &experienceUsecase{experienceRepo: experienceRepo}
}

func (u *experienceUsecase) List(ctx context.Context) ([]domain.Experience, error) {
	return u.experienceRepo.Fetch(ctx)
}

func (u *experienceUsecase) Create(ctx context.Context, input domain.ExperienceInput) (*domain.Experience, error) {
	experience := applyExperienceInput(&domain.Experience{}, input)
	if err := u.experienceRepo.Create(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *experienceUsecase) Update(ctx context.Context, id int64, input domain.ExperienceInput) (*domain.Experience, error) {
	existing, err := u.experienceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Experience not found")
		}
		return nil, err
	}

	experience := applyExperienceInput(existing, input)
	if err := u.experienceRepo.Update(ctx, experience); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Experience not found")
		}
		return nil, err
	}
	return experience, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, id int64) error {
	return u.experienceRepo.Delete(ctx, id)
}

func applyExperienceInput(e *domain.Experience, input domain.ExperienceInput) *domain.Experience {
	e.Title = input.Title
	e.Company = input.Company
	e.Location = input.Location
	e.StartDate = input.StartDate
	e.EndDate = input.EndDate
	e.Current = input.Current
	e.Description = input.Description
	e.Technologies = input.Technologies
	e.Achievements = input.Achievements
	if e.Technologies == nil {
		e.Technologies = domain.StringList{}
	}
	if e.Achievements == nil {
		e.Achievements = domain.StringList{}
	}
	// A position marked current has no end date by definition.
	if e.Current {
		e.EndDate = nil
	}
	return e
}
