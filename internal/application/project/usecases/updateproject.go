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

// UpdateProjectCommand fields left nil are not changed.
type UpdateProjectCommand struct {
	Actor       *user.User
	ProjectID   uint
	Name        *string
	Description *string
	IsComplete  *bool
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	authz       *permission.Engine
	logger      logger.Interface
}

func NewUpdateProjectUseCase(
	projectRepo project.Repository,
	authz *permission.Engine,
	logger logger.Interface,
) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*project.Project, error) {
	if err := uc.authz.Precheck(cmd.Actor, permission.ResourceProject, permission.ActionUpdate); err != nil {
		return nil, err
	}

	p, err := loadProject(ctx, uc.projectRepo, cmd.ProjectID, uc.logger)
	if err != nil {
		return nil, err
	}
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceProject, permission.ActionUpdate, p); err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := p.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := p.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.IsComplete != nil {
		p.SetComplete(*cmd.IsComplete)
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", p.ID())
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	uc.logger.Infow("project updated", "project_id", p.ID())
	return p, nil
}
