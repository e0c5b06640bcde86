package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/db"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

// UpdateTicketCommand fields left nil are not changed. ClearAssignee
// removes the assignee; it wins over AssignedUserID.
type UpdateTicketCommand struct {
	Actor          *user.User
	TicketID       uint
	Title          *string
	Description    *string
	Priority       *string
	Status         *string
	TicketType     *string
	AssignedUserID *uint
	ClearAssignee  bool
}

type UpdateTicketResult struct {
	Ticket  *ticket.Ticket
	Changes []*ticket.HistoryEntry
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	userRepo    UserReader
	txManager   db.Transactor
	authz       *permission.Engine
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	userRepo UserReader,
	txManager db.Transactor,
	authz *permission.Engine,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if err := uc.authz.Precheck(cmd.Actor, permission.ResourceTicket, permission.ActionUpdate); err != nil {
		return nil, err
	}

	changes, err := cmd.toChanges()
	if err != nil {
		return nil, err
	}

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceTicket, permission.ActionUpdate, t); err != nil {
		return nil, err
	}
	if changes.AssignedUserSet {
		if err := ensureAssignee(ctx, uc.userRepo, changes.AssignedUserID, uc.logger); err != nil {
			return nil, err
		}
	}

	var (
		current *ticket.Ticket
		entries []*ticket.HistoryEntry
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Diff against the locked row; the read above only gates access.
		current, err = uc.ticketRepo.GetByIDForUpdate(txCtx, t.ID())
		if err != nil {
			return fmt.Errorf("failed to lock ticket: %w", err)
		}
		if current == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		entries, err = current.ApplyChanges(changes, cmd.Actor.ID())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if len(entries) == 0 {
			return nil
		}

		if err := uc.historyRepo.CreateBatch(txCtx, entries); err != nil {
			return fmt.Errorf("failed to record history: %w", err)
		}
		if err := uc.ticketRepo.Update(txCtx, current); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		}
		return nil, err
	}
	if len(entries) == 0 {
		return &UpdateTicketResult{Ticket: current}, nil
	}

	uc.logger.Infow("ticket updated", "ticket_id", current.ID(), "changed_fields", len(entries))
	return &UpdateTicketResult{Ticket: current, Changes: entries}, nil
}

func (cmd UpdateTicketCommand) toChanges() (ticket.Changes, error) {
	changes := ticket.Changes{
		Title:       cmd.Title,
		Description: cmd.Description,
	}
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return changes, errors.NewValidationError(err.Error())
		}
		changes.Priority = &p
	}
	if cmd.Status != nil {
		s, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return changes, errors.NewValidationError(err.Error())
		}
		changes.Status = &s
	}
	if cmd.TicketType != nil {
		tt, err := vo.NewTicketType(*cmd.TicketType)
		if err != nil {
			return changes, errors.NewValidationError(err.Error())
		}
		changes.Type = &tt
	}
	switch {
	case cmd.ClearAssignee:
		changes.AssignedUserSet = true
	case cmd.AssignedUserID != nil:
		changes.AssignedUserSet = true
		changes.AssignedUserID = cmd.AssignedUserID
	}
	return changes, nil
}
