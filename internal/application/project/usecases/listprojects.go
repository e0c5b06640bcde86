package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/logger"
)

// ListProjectsUseCase returns the projects the actor owns, oldest first.
type ListProjectsUseCase struct {
	projectRepo project.Repository
	authz       *permission.Engine
	logger      logger.Interface
}

func NewListProjectsUseCase(
	projectRepo project.Repository,
	authz *permission.Engine,
	logger logger.Interface,
) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, actor *user.User) ([]*project.Project, error) {
	if err := uc.authz.Authorize(actor, permission.ResourceProject, permission.ActionList, nil); err != nil {
		return nil, err
	}

	projects, err := uc.projectRepo.ListByOwner(ctx, actor.ID())
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err, "owner_id", actor.ID())
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
