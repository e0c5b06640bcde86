package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	authz      *permission.Engine
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	authz *permission.Engine,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		authz:      authz,
		logger:     logger,
	}
}

// Execute returns the tickets an actor created when they can submit, and
// the tickets assigned to them otherwise. The two scopes are never merged.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, actor *user.User) ([]*ticket.Ticket, error) {
	if err := uc.authz.Authorize(actor, permission.ResourceTicket, permission.ActionList, nil); err != nil {
		return nil, err
	}

	var (
		tickets []*ticket.Ticket
		err     error
	)
	if permission.HasCapability(actor, vo.CapabilitySubmitter) {
		tickets, err = uc.ticketRepo.ListByCreator(ctx, actor.ID())
	} else {
		tickets, err = uc.ticketRepo.ListByAssignee(ctx, actor.ID())
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "user_id", actor.ID())
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}
