package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/token"
)

const bcryptCost = 12

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Login deliberately returns the same message for unknown email and wrong
// password so the endpoint cannot be used to enumerate accounts.
func (u *authUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	signed, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{Token: signed, User: user}, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid token")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, id int64, req domain.ChangePasswordRequest) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Unauthorized("Invalid token")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}

	return u.userRepo.UpdatePassword(ctx, id, string(hash))
}
