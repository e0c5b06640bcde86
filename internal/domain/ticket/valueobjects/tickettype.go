package valueobjects

import "fmt"

type TicketType string

const (
	TypeBug         TicketType = "Bug"
	TypeDebug       TicketType = "Debug"
	TypeFeature     TicketType = "Feature"
	TypeImprovement TicketType = "Improvement"
	TypeTask        TicketType = "Task"
	TypeOther       TicketType = "Other"
)

var validTypes = map[TicketType]bool{
	TypeBug:         true,
	TypeDebug:       true,
	TypeFeature:     true,
	TypeImprovement: true,
	TypeTask:        true,
	TypeOther:       true,
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %q", s)
	}
	return t, nil
}

func (t TicketType) IsValid() bool {
	return validTypes[t]
}

func (t TicketType) String() string {
	return string(t)
}
