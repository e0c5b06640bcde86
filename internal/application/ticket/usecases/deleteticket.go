package usecases

import (
	"context"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/db"
	"issuetracker/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    *user.User
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	historyRepo    ticket.HistoryRepository
	attachmentRepo ticket.AttachmentRepository
	blobs          ticket.BlobStore
	txManager      db.Transactor
	authz          *permission.Engine
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	historyRepo ticket.HistoryRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobs ticket.BlobStore,
	txManager db.Transactor,
	authz *permission.Engine,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		historyRepo:    historyRepo,
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		txManager:      txManager,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if err := uc.authz.Precheck(cmd.Actor, permission.ResourceTicket, permission.ActionDelete); err != nil {
		return err
	}

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return err
	}
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceTicket, permission.ActionDelete, t); err != nil {
		return err
	}

	ids := []uint{t.ID()}
	var refs []string
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		attachments, err := uc.attachmentRepo.ListByTickets(txCtx, ids)
		if err != nil {
			return err
		}
		for _, a := range attachments {
			refs = append(refs, a.StorageRef())
		}

		if err := uc.commentRepo.DeleteByTickets(txCtx, ids); err != nil {
			return err
		}
		if err := uc.historyRepo.DeleteByTickets(txCtx, ids); err != nil {
			return err
		}
		if err := uc.attachmentRepo.DeleteByTickets(txCtx, ids); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", t.ID())
		return err
	}

	removeBlobs(ctx, uc.blobs, refs, uc.logger)
	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "attachments_removed", len(refs))
	return nil
}
