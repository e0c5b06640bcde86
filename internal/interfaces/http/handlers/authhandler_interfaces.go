package handlers

import (
	"context"

	"issuetracker/internal/application/user/usecases"
	"issuetracker/internal/domain/user"
)

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*user.User, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}
