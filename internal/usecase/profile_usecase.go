package usecase

import (
	"context"
	"errors"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/storage"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	assets      *storage.Store
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, assets *storage.Store) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo, assets: assets}
}

// Get never 404s: a missing row yields placeholder defaults so a fresh
// deployment renders before anything has been configured.
func (u *profileUsecase) Get(ctx context.Context) (*domain.Profile, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Profile{
				ID:        1,
				Name:      "Your Name",
				Title:     "Software Developer",
				Available: true,
			}, nil
		}
		return nil, err
	}
	u.decorate(profile)
	return profile, nil
}

func (u *profileUsecase) Update(ctx context.Context, req domain.UpdateProfileRequest) (*domain.Profile, error) {
	if err := u.profileRepo.Update(ctx, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return u.Get(ctx)
}

func (u *profileUsecase) UploadPhoto(ctx context.Context, file domain.FileUpload) (string, error) {
	return u.replaceAsset(ctx, file, storage.PhotoPolicy,
		func(p *domain.Profile) *string { return p.Photo },
		u.profileRepo.SetPhoto,
	)
}

func (u *profileUsecase) UploadCV(ctx context.Context, file domain.FileUpload) (string, error) {
	return u.replaceAsset(ctx, file, storage.CVPolicy,
		func(p *domain.Profile) *string { return p.CVFile },
		u.profileRepo.SetCV,
	)
}

// replaceAsset stores the new file, points the profile row at it and then
// removes the superseded file. Removal failures are logged, not surfaced:
// the new asset is already live.
func (u *profileUsecase) replaceAsset(
	ctx context.Context,
	file domain.FileUpload,
	policy storage.UploadPolicy,
	current func(*domain.Profile) *string,
	persist func(context.Context, string) error,
) (string, error) {
	var old *string
	if profile, err := u.profileRepo.Get(ctx); err == nil {
		old = current(profile)
	}

	filename, err := u.assets.Save(policy, file)
	if err != nil {
		return "", mapUploadErr(err)
	}

	if err := persist(ctx, filename); err != nil {
		if rmErr := u.assets.Remove(policy, filename); rmErr != nil {
			logger.Log.Warn("orphaned upload not removed", "file", filename, "error", rmErr)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Profile not found")
		}
		return "", err
	}

	if old != nil && isStoredFilename(*old) {
		if err := u.assets.Remove(policy, *old); err != nil {
			logger.Log.Warn("superseded upload not removed", "file", *old, "error", err)
		}
	}

	return u.assets.PublicURL(policy, filename), nil
}

func (u *profileUsecase) CVPath(ctx context.Context) (string, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("CV not available")
		}
		return "", err
	}
	if profile.CVFile == nil || *profile.CVFile == "" {
		return "", apperror.NotFound("CV not available")
	}
	return u.assets.FilePath(storage.CVPolicy, *profile.CVFile), nil
}

func (u *profileUsecase) decorate(p *domain.Profile) {
	if p.Photo != nil && isStoredFilename(*p.Photo) {
		url := u.assets.PublicURL(storage.PhotoPolicy, *p.Photo)
		p.Photo = &url
	}
	if p.CVFile != nil && *p.CVFile != "" {
		url := u.assets.PublicURL(storage.CVPolicy, *p.CVFile)
		p.CVURL = &url
	}
}

// isStoredFilename reports whether a value is a bare stored filename rather
// than an already-public URL.
func isStoredFilename(v string) bool {
	return v != "" && !strings.HasPrefix(v, "/") && !strings.HasPrefix(v, "http")
}

func mapUploadErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrTooLarge):
		return apperror.PayloadTooLarge("File too large")
	case errors.Is(err, storage.ErrBadType):
		return apperror.BadRequest("Unsupported file type")
	default:
		return apperror.Internal(err)
	}
}
