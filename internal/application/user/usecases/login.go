package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

type TokenService interface {
	Generate(userID uint) (token string, expiresIn int64, err error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Execute never reveals whether the email, the password or the account
// state was the reason for a rejection.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := existing.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}
	if !existing.IsActive() {
		uc.logger.Warnw("login attempt on inactive account", "user_id", existing.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresIn, err := uc.tokens.Generate(existing.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())
	return &LoginResult{
		User:        existing,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
