package ticket

import (
	"context"

	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
)

type listTicketsUseCase interface {
	Execute(ctx context.Context, actor *user.User) ([]*ticket.Ticket, error)
}

type createTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*ticket.Ticket, error)
}

type getTicketUseCase interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*usecases.TicketDetail, error)
}

type updateTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error)
}

type deleteTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type listCommentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListCommentsQuery) ([]*ticket.Comment, error)
}

type addCommentUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*ticket.Comment, error)
}

type deleteCommentUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteCommentCommand) error
}

type listHistoryUseCase interface {
	Execute(ctx context.Context, query usecases.ListHistoryQuery) ([]*ticket.HistoryEntry, error)
}

type listAttachmentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListAttachmentsQuery) ([]*ticket.Attachment, error)
}

type uploadAttachmentUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadAttachmentCommand) (*ticket.Attachment, error)
}

type downloadAttachmentUseCase interface {
	Execute(ctx context.Context, query usecases.DownloadAttachmentQuery) (*usecases.Download, error)
}

type deleteAttachmentUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteAttachmentCommand) error
}
