package usecases

import (
	"context"

	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

type CreateUserCommand struct {
	Email        string
	Name         string
	LastName     string
	Password     string
	Capabilities []string
}

// CreateUserUseCase is the operator path for creating accounts with any
// capability set, including superusers.
type CreateUserUseCase struct {
	userRepo          user.Repository
	passwordHasher    user.PasswordHasher
	minPasswordLength int
	logger            logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	minPasswordLength int,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:          userRepo,
		passwordHasher:    hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	caps, err := vo.ParseCapabilitySet(cmd.Capabilities)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return createUser(ctx, uc.userRepo, uc.passwordHasher, uc.minPasswordLength, uc.logger, cmd, caps)
}
