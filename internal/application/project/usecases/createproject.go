package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

type CreateProjectCommand struct {
	Actor       *user.User
	Name        string
	Description string
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	authz       *permission.Engine
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	authz *permission.Engine,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*project.Project, error) {
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceProject, permission.ActionCreate, nil); err != nil {
		return nil, err
	}

	p, err := project.NewProject(cmd.Actor.ID(), cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create project", "error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	uc.logger.Infow("project created", "project_id", p.ID(), "owner_id", p.OwnerID())
	return p, nil
}
