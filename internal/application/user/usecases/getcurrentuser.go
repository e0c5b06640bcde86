package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

// GetCurrentUserUseCase resolves the actor behind a verified token.
type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute returns Unauthorized for unknown or deactivated users so a token
// outliving its account is rejected.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	if userID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load current user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("user no longer exists")
	}
	if !u.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}
	return u, nil
}
