package handlers

import (
	"context"

	"issuetracker/internal/application/project/usecases"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
)

// Use case interfaces for ProjectHandler

type listProjectsUseCase interface {
	Execute(ctx context.Context, actor *user.User) ([]*project.Project, error)
}

type createProjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProjectCommand) (*project.Project, error)
}

type getProjectUseCase interface {
	Execute(ctx context.Context, query usecases.GetProjectQuery) (*usecases.ProjectDetail, error)
}

type updateProjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProjectCommand) (*project.Project, error)
}

type deleteProjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteProjectCommand) error
}

type assignUsersUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignUsersCommand) ([]*project.Assignment, error)
}

type listAssignmentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListAssignmentsQuery) ([]*project.Assignment, error)
}
