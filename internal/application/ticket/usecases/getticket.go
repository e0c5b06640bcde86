package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    *user.User
	TicketID uint
}

// RenderedComment pairs a comment with its sanitized HTML.
type RenderedComment struct {
	Comment *ticket.Comment
	HTML    string
}

type TicketDetail struct {
	Ticket          *ticket.Ticket
	DescriptionHTML string
	Comments        []RenderedComment
	History         []*ticket.HistoryEntry
	Attachments     []*ticket.Attachment
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	historyRepo    ticket.HistoryRepository
	attachmentRepo ticket.AttachmentRepository
	renderer       MarkdownRenderer
	authz          *permission.Engine
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	historyRepo ticket.HistoryRepository,
	attachmentRepo ticket.AttachmentRepository,
	renderer MarkdownRenderer,
	authz *permission.Engine,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		historyRepo:    historyRepo,
		attachmentRepo: attachmentRepo,
		renderer:       renderer,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetail, error) {
	if err := uc.authz.Authorize(query.Actor, permission.ResourceTicket, permission.ActionRetrieve, nil); err != nil {
		return nil, err
	}

	t, err := loadTicket(ctx, uc.ticketRepo, query.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	history, err := uc.historyRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list history", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	attachments, err := uc.attachmentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	detail := &TicketDetail{
		Ticket:      t,
		Comments:    make([]RenderedComment, len(comments)),
		History:     history,
		Attachments: attachments,
	}
	detail.DescriptionHTML = uc.render(t.Description(), "ticket_id", t.ID())
	for i, c := range comments {
		detail.Comments[i] = RenderedComment{
			Comment: c,
			HTML:    uc.render(c.Message(), "comment_id", c.ID()),
		}
	}
	return detail, nil
}

// render degrades to empty HTML on failure; the raw text is still returned.
func (uc *GetTicketUseCase) render(text string, key string, id uint) string {
	html, err := uc.renderer.Render(text)
	if err != nil {
		uc.logger.Warnw("failed to render markdown", "error", err, key, id)
		return ""
	}
	return html
}
