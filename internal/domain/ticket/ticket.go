package ticket

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/shared/biztime"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 5000
)

// Field names recorded in history entries.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldPriority     = "priority"
	FieldStatus       = "status"
	FieldType         = "ticket_type"
	FieldAssignedUser = "assigned_user"
)

type Ticket struct {
	id             uint
	projectID      uint
	creatorID      uint
	title          string
	description    string
	priority       vo.Priority
	status         vo.TicketStatus
	ticketType     vo.TicketType
	assignedUserID *uint
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	projectID uint,
	creatorID uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	ticketType vo.TicketType,
	assignedUserID *uint,
) (*Ticket, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %q", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %q", status)
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %q", ticketType)
	}
	if assignedUserID != nil && *assignedUserID == 0 {
		return nil, fmt.Errorf("assigned user ID cannot be zero")
	}

	now := biztime.NowUTC()
	return &Ticket{
		projectID:      projectID,
		creatorID:      creatorID,
		title:          title,
		description:    description,
		priority:       priority,
		status:         status,
		ticketType:     ticketType,
		assignedUserID: assignedUserID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id, projectID, creatorID uint,
	title, description string,
	priority vo.Priority,
	status vo.TicketStatus,
	ticketType vo.TicketType,
	assignedUserID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %q", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %q", status)
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %q", ticketType)
	}

	return &Ticket{
		id:             id,
		projectID:      projectID,
		creatorID:      creatorID,
		title:          title,
		description:    description,
		priority:       priority,
		status:         status,
		ticketType:     ticketType,
		assignedUserID: assignedUserID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ProjectID() uint {
	return t.projectID
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

// OwnerID is the creating user.
func (t *Ticket) OwnerID() uint {
	return t.creatorID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) AssignedUserID() *uint {
	if t.assignedUserID == nil {
		return nil
	}
	id := *t.assignedUserID
	return &id
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Changes carries the fields of an update request. Nil pointers mean "not
// supplied". AssignedUserSet distinguishes clearing the assignee
// (AssignedUserSet with nil AssignedUserID) from leaving it untouched.
type Changes struct {
	Title           *string
	Description     *string
	Priority        *vo.Priority
	Status          *vo.TicketStatus
	Type            *vo.TicketType
	AssignedUserSet bool
	AssignedUserID  *uint
}

// ApplyChanges validates changes, applies every supplied field whose value
// differs, and returns one history entry per changed field in field order.
// On a validation error the ticket is left untouched.
func (t *Ticket) ApplyChanges(changes Changes, changedBy uint) ([]*HistoryEntry, error) {
	if err := changes.validate(); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	var entries []*HistoryEntry
	record := func(field, oldValue, newValue string) {
		entries = append(entries, NewHistoryEntry(t.id, changedBy, field, oldValue, newValue, now))
	}

	if changes.Title != nil {
		title := strings.TrimSpace(*changes.Title)
		if title != t.title {
			record(FieldTitle, t.title, title)
			t.title = title
		}
	}
	if changes.Description != nil && *changes.Description != t.description {
		record(FieldDescription, t.description, *changes.Description)
		t.description = *changes.Description
	}
	if changes.Priority != nil && *changes.Priority != t.priority {
		record(FieldPriority, t.priority.String(), changes.Priority.String())
		t.priority = *changes.Priority
	}
	if changes.Status != nil && *changes.Status != t.status {
		record(FieldStatus, t.status.String(), changes.Status.String())
		t.status = *changes.Status
	}
	if changes.Type != nil && *changes.Type != t.ticketType {
		record(FieldType, t.ticketType.String(), changes.Type.String())
		t.ticketType = *changes.Type
	}
	if changes.AssignedUserSet && !sameUserID(t.assignedUserID, changes.AssignedUserID) {
		record(FieldAssignedUser, formatUserID(t.assignedUserID), formatUserID(changes.AssignedUserID))
		t.assignedUserID = changes.AssignedUserID
	}

	if len(entries) > 0 {
		t.updatedAt = now
	}
	return entries, nil
}

func (c Changes) validate() error {
	if c.Title != nil {
		if err := validateTitle(strings.TrimSpace(*c.Title)); err != nil {
			return err
		}
	}
	if c.Description != nil {
		if err := validateDescription(*c.Description); err != nil {
			return err
		}
	}
	if c.Priority != nil && !c.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %q", *c.Priority)
	}
	if c.Status != nil && !c.Status.IsValid() {
		return fmt.Errorf("invalid status: %q", *c.Status)
	}
	if c.Type != nil && !c.Type.IsValid() {
		return fmt.Errorf("invalid ticket type: %q", *c.Type)
	}
	if c.AssignedUserSet && c.AssignedUserID != nil && *c.AssignedUserID == 0 {
		return fmt.Errorf("assigned user ID cannot be zero")
	}
	return nil
}

func sameUserID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatUserID(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}
