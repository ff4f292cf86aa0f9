package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type certificationUsecase struct {
	certificationRepo domain.CertificationRepository
}

func NewCertificationUsecase(certificationRepo domain.CertificationRepository) domain.CertificationUsecase {
	return &certificationUsecase{certificationRepo: certificationRepo}
}

func (u *certificationUsecase) List(ctx context.Context) ([]domain.Certification, error) {
	return u.certificationRepo.FetchActive(ctx)
}

func (u *certificationUsecase) Create(ctx context.Context, input domain.CertificationInput) (*domain.Certification, error) {
	cert := &domain.Certification{
		Name:          input.Name,
		Issuer:        input.Issuer,
		IssueDate:     input.IssueDate,
		ExpiryDate:    input.ExpiryDate,
		CredentialID:  input.CredentialID,
		CredentialURL: input.CredentialURL,
		Image:         input.Image,
		Active:        true,
	}
	if input.Active != nil {
		cert.Active = *input.Active
	}
	if err := u.certificationRepo.Create(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (u *certificationUsecase) Update(ctx context.Context, id int64, input domain.CertificationInput) (*domain.Certification, error) {
	cert, err := u.certificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Certification not found")
		}
		return nil, err
	}

	cert.Name = input.Name
	cert.Issuer = input.Issuer
	cert.IssueDate = input.IssueDate
	cert.ExpiryDate = input.ExpiryDate
	cert.CredentialID = input.CredentialID
	cert.CredentialURL = input.CredentialURL
	cert.Image = input.Image
	if input.Active != nil {
		cert.Active = *input.Active
	}

	if err := u.certificationRepo.Update(ctx, cert); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Certification not found")
		}
		return nil, err
	}
	return cert, nil
}

func (u *certificationUsecase) Delete(ctx context.Context, id int64) error {
	return u.certificationRepo.Delete(ctx, id)
}
