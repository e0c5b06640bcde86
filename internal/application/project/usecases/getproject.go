package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/logger"
)

type GetProjectQuery struct {
	Actor     *user.User
	ProjectID uint
}

type ProjectDetail struct {
	Project       *project.Project
	AssignedUsers []*user.User
	Tickets       []*ticket.Ticket
}

type GetProjectUseCase struct {
	projectRepo    project.Repository
	assignmentRepo project.AssignmentRepository
	userRepo       user.Repository
	ticketRepo     ticket.TicketRepository
	authz          *permission.Engine
	logger         logger.Interface
}

func NewGetProjectUseCase(
	projectRepo project.Repository,
	assignmentRepo project.AssignmentRepository,
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	authz *permission.Engine,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		ticketRepo:     ticketRepo,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*ProjectDetail, error) {
	if err := uc.authz.Authorize(query.Actor, permission.ResourceProject, permission.ActionRetrieve, nil); err != nil {
		return nil, err
	}

	p, err := loadProject(ctx, uc.projectRepo, query.ProjectID, uc.logger)
	if err != nil {
		return nil, err
	}

	assignments, err := uc.assignmentRepo.ListByProject(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to list assignments", "error", err, "project_id", p.ID())
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	userIDs := make([]uint, len(assignments))
	for i, a := range assignments {
		userIDs[i] = a.UserID()
	}
	users, err := uc.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve assigned users", "error", err, "project_id", p.ID())
		return nil, fmt.Errorf("failed to resolve assigned users: %w", err)
	}
	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	assigned := make([]*user.User, 0, len(assignments))
	for _, id := range userIDs {
		if u, ok := byID[id]; ok {
			assigned = append(assigned, u)
		}
	}

	tickets, err := uc.ticketRepo.ListByProject(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to list project tickets", "error", err, "project_id", p.ID())
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ProjectDetail{
		Project:       p,
		AssignedUsers: assigned,
		Tickets:       tickets,
	}, nil
}
