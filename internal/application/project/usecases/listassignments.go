package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/logger"
)

type ListAssignmentsQuery struct {
	Actor     *user.User
	ProjectID uint
}

type ListAssignmentsUseCase struct {
	projectRepo    project.Repository
	assignmentRepo project.AssignmentRepository
	authz          *permission.Engine
	logger         logger.Interface
}

func NewListAssignmentsUseCase(
	projectRepo project.Repository,
	assignmentRepo project.AssignmentRepository,
	authz *permission.Engine,
	logger logger.Interface,
) *ListAssignmentsUseCase {
	return &ListAssignmentsUseCase{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *ListAssignmentsUseCase) Execute(ctx context.Context, query ListAssignmentsQuery) ([]*project.Assignment, error) {
	if err := uc.authz.Authorize(query.Actor, permission.ResourceProject, permission.ActionList, nil); err != nil {
		return nil, err
	}

	if _, err := loadProject(ctx, uc.projectRepo, query.ProjectID, uc.logger); err != nil {
		return nil, err
	}

	assignments, err := uc.assignmentRepo.ListByProject(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list assignments", "error", err, "project_id", query.ProjectID)
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}
