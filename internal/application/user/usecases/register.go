package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Name     string
	LastName string
	Password string
}

// RegisterUseCase creates self-registered accounts. New users hold only the
// staff capability.
type RegisterUseCase struct {
	userRepo          user.Repository
	passwordHasher    user.PasswordHasher
	minPasswordLength int
	logger            logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	minPasswordLength int,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:          userRepo,
		passwordHasher:    hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	caps, _ := vo.NewCapabilitySet(vo.CapabilityStaff)
	return createUser(ctx, uc.userRepo, uc.passwordHasher, uc.minPasswordLength, uc.logger, CreateUserCommand{
		Email:    cmd.Email,
		Name:     cmd.Name,
		LastName: cmd.LastName,
		Password: cmd.Password,
	}, caps)
}

func createUser(
	ctx context.Context,
	repo user.Repository,
	hasher user.PasswordHasher,
	minPasswordLength int,
	log logger.Interface,
	cmd CreateUserCommand,
	caps vo.CapabilitySet,
) (*user.User, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	lastName, err := vo.NewOptionalName(cmd.LastName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := user.ValidatePassword(cmd.Password, minPasswordLength); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := repo.ExistsByEmail(ctx, email.String())
	if err != nil {
		log.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("user with this email already exists")
	}

	newUser, err := user.NewUser(email, name, lastName, caps)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := hasher.Hash(cmd.Password)
	if err != nil {
		log.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		log.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Infow("user created", "user_id", newUser.ID(), "capabilities", caps.Strings())
	return newUser, nil
}
