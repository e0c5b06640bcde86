package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/logger"
)

type ListHistoryQuery struct {
	Actor    *user.User
	TicketID uint
}

type ListHistoryUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	authz       *permission.Engine
	logger      logger.Interface
}

func NewListHistoryUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	authz *permission.Engine,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, query ListHistoryQuery) ([]*ticket.HistoryEntry, error) {
	if err := uc.authz.Authorize(query.Actor, permission.ResourceHistory, permission.ActionList, nil); err != nil {
		return nil, err
	}
	if _, err := loadTicket(ctx, uc.ticketRepo, query.TicketID, uc.logger); err != nil {
		return nil, err
	}

	entries, err := uc.historyRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list history", "error", err, "ticket_id", query.TicketID)
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}
