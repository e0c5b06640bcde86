package ticket

import (
	"fmt"
	"time"
)

// MaxHistoryValueLength bounds old/new values; longer values are cut.
const MaxHistoryValueLength = 100

// HistoryEntry records one field change. Entries are append-only.
type HistoryEntry struct {
	id        uint
	ticketID  uint
	changedBy uint
	fieldName string
	oldValue  string
	newValue  string
	createdAt time.Time
}

func NewHistoryEntry(ticketID, changedBy uint, fieldName, oldValue, newValue string, at time.Time) *HistoryEntry {
	return &HistoryEntry{
		ticketID:  ticketID,
		changedBy: changedBy,
		fieldName: fieldName,
		oldValue:  truncate(oldValue, MaxHistoryValueLength),
		newValue:  truncate(newValue, MaxHistoryValueLength),
		createdAt: at,
	}
}

func ReconstructHistoryEntry(id, ticketID, changedBy uint, fieldName, oldValue, newValue string, createdAt time.Time) *HistoryEntry {
	return &HistoryEntry{
		id:        id,
		ticketID:  ticketID,
		changedBy: changedBy,
		fieldName: fieldName,
		oldValue:  oldValue,
		newValue:  newValue,
		createdAt: createdAt,
	}
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) TicketID() uint {
	return h.ticketID
}

func (h *HistoryEntry) ChangedBy() uint {
	return h.changedBy
}

func (h *HistoryEntry) FieldName() string {
	return h.fieldName
}

func (h *HistoryEntry) OldValue() string {
	return h.oldValue
}

func (h *HistoryEntry) NewValue() string {
	return h.newValue
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

// SetTicketID binds entries built before the ticket was persisted.
func (h *HistoryEntry) SetTicketID(ticketID uint) {
	h.ticketID = ticketID
}

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	h.id = id
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
