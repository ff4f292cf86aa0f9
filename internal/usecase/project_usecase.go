package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/storage"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	assets      *storage.Store
}

func NewProjectUsecase(projectRepo domain.ProjectRepository, assets *storage.Store) domain.ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo, assets: assets}
}

func (u *projectUsecase) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	projects, err := u.projectRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		u.decorate(&projects[i])
	}
	return projects, nil
}

func (u *projectUsecase) Get(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}
	u.decorate(project)
	return project, nil
}

func (u *projectUsecase) Create(ctx context.Context, input domain.ProjectInput, image *domain.FileUpload) (*domain.Project, error) {
	project := fromInput(input)

	if image != nil {
		filename, err := u.assets.Save(storage.ProjectImagePolicy, *image)
		if err != nil {
			return nil, mapUploadErr(err)
		}
		project.Image = &filename
	}

	if err := u.projectRepo.Create(ctx, project); err != nil {
		if project.Image != nil {
			if rmErr := u.assets.Remove(storage.ProjectImagePolicy, *project.Image); rmErr != nil {
				logger.Log.Warn("orphaned upload not removed", "file", *project.Image, "error", rmErr)
			}
		}
		return nil, err
	}

	u.decorate(project)
	return project, nil
}

func (u *projectUsecase) Update(ctx context.Context, id int64, input domain.ProjectInput, image *domain.FileUpload) (*domain.Project, error) {
	existing, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}

	project := fromInput(input)
	project.ID = id

	setImage := image != nil
	if setImage {
		filename, err := u.assets.Save(storage.ProjectImagePolicy, *image)
		if err != nil {
			return nil, mapUploadErr(err)
		}
		project.Image = &filename
	}

	if err := u.projectRepo.Update(ctx, project, setImage); err != nil {
		if setImage {
			if rmErr := u.assets.Remove(storage.ProjectImagePolicy, *project.Image); rmErr != nil {
				logger.Log.Warn("orphaned upload not removed", "file", *project.Image, "error", rmErr)
			}
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}

	// The replaced image has no owner left; drop it from disk.
	if setImage && existing.Image != nil && isStoredFilename(*existing.Image) {
		if err := u.assets.Remove(storage.ProjectImagePolicy, *existing.Image); err != nil {
			logger.Log.Warn("superseded upload not removed", "file", *existing.Image, "error", err)
		}
	}

	return u.Get(ctx, id)
}

// Delete succeeds even when the project is already gone.
func (u *projectUsecase) Delete(ctx context.Context, id int64) error {
	existing, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := u.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Image != nil && isStoredFilename(*existing.Image) {
		if err := u.assets.Remove(storage.ProjectImagePolicy, *existing.Image); err != nil {
			logger.Log.Warn("orphaned upload not removed", "file", *existing.Image, "error", err)
		}
	}
	return nil
}

func (u *projectUsecase) decorate(p *domain.Project) {
	if p.Image != nil && isStoredFilename(*p.Image) {
		url := u.assets.PublicURL(storage.ProjectImagePolicy, *p.Image)
		p.Image = &url
	}
}

func fromInput(input domain.ProjectInput) *domain.Project {
	status := input.Status
	if status == "" {
		status = "completed"
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	technologies := input.Technologies
	if technologies == nil {
		technologies = domain.StringList{}
	}
	return &domain.Project{
		Title:           input.Title,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		DemoURL:         input.DemoURL,
		GithubURL:       input.GithubURL,
		Category:        input.Category,
		Technologies:    technologies,
		Status:          status,
		Featured:        input.Featured,
		Active:          active,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Client:          input.Client,
	}
}
