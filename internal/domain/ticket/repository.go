package ticket

import (
	"context"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	// GetByID returns nil, nil when the ticket does not exist.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetByIDForUpdate is GetByID with a row lock held until the surrounding
	// transaction ends.
	GetByIDForUpdate(ctx context.Context, ticketID uint) (*Ticket, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]*Ticket, error)
	ListByAssignee(ctx context.Context, assigneeID uint) ([]*Ticket, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Ticket, error)
	ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error)
	DeleteByProject(ctx context.Context, projectID uint) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// ListByTicket returns comments oldest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
	DeleteByTickets(ctx context.Context, ticketIDs []uint) error
}

// HistoryRepository has no update or single-row delete: entries only
// disappear with their ticket.
type HistoryRepository interface {
	CreateBatch(ctx context.Context, entries []*HistoryEntry) error
	// ListByTicket returns entries oldest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
	DeleteByTickets(ctx context.Context, ticketIDs []uint) error
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *Attachment) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	// ListByTicket returns attachments oldest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
	ListByTickets(ctx context.Context, ticketIDs []uint) ([]*Attachment, error)
	Delete(ctx context.Context, attachmentID uint) error
	DeleteByTickets(ctx context.Context, ticketIDs []uint) error
}
