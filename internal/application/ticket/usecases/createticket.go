package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor          *user.User
	ProjectID      uint
	Title          string
	Description    string
	Priority       string
	Status         string
	TicketType     string
	AssignedUserID *uint
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo ProjectReader
	userRepo    UserReader
	authz       *permission.Engine
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo ProjectReader,
	userRepo UserReader,
	authz *permission.Engine,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceTicket, permission.ActionCreate, nil); err != nil {
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	ticketType, err := vo.NewTicketType(cmd.TicketType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := ensureProject(ctx, uc.projectRepo, cmd.ProjectID, uc.logger); err != nil {
		return nil, err
	}
	if err := ensureAssignee(ctx, uc.userRepo, cmd.AssignedUserID, uc.logger); err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(cmd.ProjectID, cmd.Actor.ID(), cmd.Title, cmd.Description,
		priority, status, ticketType, cmd.AssignedUserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "project_id", t.ProjectID(), "creator_id", t.CreatorID())
	return t, nil
}
