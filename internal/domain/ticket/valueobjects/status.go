package valueobjects

import "fmt"

// TicketStatus moves freely between values; there is no transition graph.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusResolved   TicketStatus = "Resolved"
	StatusDone       TicketStatus = "Done"
)

var validStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusDone:       true,
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %q", s)
	}
	return status, nil
}

func (s TicketStatus) IsValid() bool {
	return validStatuses[s]
}

func (s TicketStatus) String() string {
	return string(s)
}

// IsClosed reports whether the work is finished (Resolved or Done).
func (s TicketStatus) IsClosed() bool {
	return s == StatusResolved || s == StatusDone
}
