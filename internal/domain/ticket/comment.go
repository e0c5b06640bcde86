package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"issuetracker/internal/shared/biztime"
)

const MaxCommentLength = 200

// Comment is immutable once written; it can only be deleted by its author.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	message   string
	createdAt time.Time
}

func NewComment(ticketID, authorID uint, message string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if utf8.RuneCountInString(message) > MaxCommentLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", MaxCommentLength)
	}

	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, ticketID, authorID uint, message string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

// OwnerID is the author.
func (c *Comment) OwnerID() uint {
	return c.authorID
}

func (c *Comment) Message() string {
	return c.message
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
