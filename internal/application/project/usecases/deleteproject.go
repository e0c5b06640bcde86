package usecases

import (
	"context"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/db"
	"issuetracker/internal/shared/logger"
)

type DeleteProjectCommand struct {
	Actor     *user.User
	ProjectID uint
}

// DeleteProjectUseCase removes a project together with its assignments,
// tickets and everything hanging off those tickets.
type DeleteProjectUseCase struct {
	projectRepo    project.Repository
	assignmentRepo project.AssignmentRepository
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	historyRepo    ticket.HistoryRepository
	attachmentRepo ticket.AttachmentRepository
	blobs          BlobRemover
	txManager      db.Transactor
	authz          *permission.Engine
	logger         logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.Repository,
	assignmentRepo project.AssignmentRepository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	historyRepo ticket.HistoryRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobs BlobRemover,
	txManager db.Transactor,
	authz *permission.Engine,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
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

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	if err := uc.authz.Precheck(cmd.Actor, permission.ResourceProject, permission.ActionDelete); err != nil {
		return err
	}

	p, err := loadProject(ctx, uc.projectRepo, cmd.ProjectID, uc.logger)
	if err != nil {
		return err
	}
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceProject, permission.ActionDelete, p); err != nil {
		return err
	}

	var blobRefs []string
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		ticketIDs, err := uc.ticketRepo.ListIDsByProject(txCtx, p.ID())
		if err != nil {
			return err
		}

		attachments, err := uc.attachmentRepo.ListByTickets(txCtx, ticketIDs)
		if err != nil {
			return err
		}
		for _, a := range attachments {
			blobRefs = append(blobRefs, a.StorageRef())
		}

		if err := uc.commentRepo.DeleteByTickets(txCtx, ticketIDs); err != nil {
			return err
		}
		if err := uc.historyRepo.DeleteByTickets(txCtx, ticketIDs); err != nil {
			return err
		}
		if err := uc.attachmentRepo.DeleteByTickets(txCtx, ticketIDs); err != nil {
			return err
		}
		if err := uc.ticketRepo.DeleteByProject(txCtx, p.ID()); err != nil {
			return err
		}
		if err := uc.assignmentRepo.DeleteByProject(txCtx, p.ID()); err != nil {
			return err
		}
		return uc.projectRepo.Delete(txCtx, p.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete project", "error", err, "project_id", p.ID())
		return err
	}

	for _, ref := range blobRefs {
		if err := uc.blobs.Delete(ctx, ref); err != nil {
			uc.logger.Warnw("failed to remove attachment blob", "error", err, "ref", ref)
		}
	}

	uc.logger.Infow("project deleted", "project_id", p.ID(), "attachments_removed", len(blobRefs))
	return nil
}
