package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

// Proficiency assumed for skills created without an explicit level.
const defaultSkillLevel = 80

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	return u.skillRepo.FetchActive(ctx)
}

func (u *skillUsecase) Grouped(ctx context.Context) (map[string][]domain.Skill, error) {
	skills, err := u.skillRepo.FetchActive(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]domain.Skill)
	for _, s := range skills {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped, nil
}

func (u *skillUsecase) Create(ctx context.Context, input domain.SkillInput) (*domain.Skill, error) {
	skill := &domain.Skill{
		Name:        input.Name,
		Category:    input.Category,
		Level:       defaultSkillLevel,
		Icon:        input.Icon,
		IsMainStack: input.IsMainStack,
		Active:      true,
	}
	if input.Level != nil {
		skill.Level = *input.Level
	}
	if input.Active != nil {
		skill.Active = *input.Active
	}
	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Update(ctx context.Context, id int64, input domain.SkillInput) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}

	skill.Name = input.Name
	skill.Category = input.Category
	skill.Icon = input.Icon
	skill.IsMainStack = input.IsMainStack
	if input.Level != nil {
		skill.Level = *input.Level
	}
	if input.Active != nil {
		skill.Active = *input.Active
	}

	if err := u.skillRepo.Update(ctx, skill); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id int64) error {
	return u.skillRepo.Delete(ctx, id)
}
