package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor    *user.User
	TicketID uint
	Message  string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	authz       *permission.Engine
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	authz *permission.Engine,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*ticket.Comment, error) {
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceComment, permission.ActionCreate, nil); err != nil {
		return nil, err
	}

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}

	c, err := ticket.NewComment(t.ID(), cmd.Actor.ID(), cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.commentRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create comment", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	uc.logger.Infow("comment added", "comment_id", c.ID(), "ticket_id", t.ID())
	return c, nil
}

type DeleteCommentCommand struct {
	Actor     *user.User
	CommentID uint
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	authz       *permission.Engine
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	commentRepo ticket.CommentRepository,
	authz *permission.Engine,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if err := uc.authz.Precheck(cmd.Actor, permission.ResourceComment, permission.ActionDelete); err != nil {
		return err
	}

	c, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to get comment", "error", err, "comment_id", cmd.CommentID)
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if c == nil {
		return errors.NewNotFoundError("comment not found")
	}
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceComment, permission.ActionDelete, c); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", c.ID())
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	uc.logger.Infow("comment deleted", "comment_id", c.ID(), "ticket_id", c.TicketID())
	return nil
}

type ListCommentsQuery struct {
	Actor    *user.User
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	authz       *permission.Engine
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	authz *permission.Engine,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*ticket.Comment, error) {
	if err := uc.authz.Authorize(query.Actor, permission.ResourceComment, permission.ActionList, nil); err != nil {
		return nil, err
	}
	if _, err := loadTicket(ctx, uc.ticketRepo, query.TicketID, uc.logger); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", query.TicketID)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
