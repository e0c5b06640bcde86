package valueobjects

import "fmt"

type Priority string

const (
	PriorityNone   Priority = "None"
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var validPriorities = map[Priority]bool{
	PriorityNone:   true,
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %q", s)
	}
	return p, nil
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) String() string {
	return string(p)
}
