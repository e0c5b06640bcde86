package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxNameLength = 255

// Name is a trimmed personal name. Empty values are allowed only through
// NewOptionalName.
type Name struct {
	value string
}

func NewName(value string) (*Name, error) {
	normalized := strings.Join(strings.Fields(value), " ")
	if normalized == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	return newName(normalized)
}

// NewOptionalName accepts an empty value (used for last names).
func NewOptionalName(value string) (*Name, error) {
	return newName(strings.Join(strings.Fields(value), " "))
}

func newName(normalized string) (*Name, error) {
	if len(normalized) > maxNameLength {
		return nil, fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	return &Name{value: normalized}, nil
}

func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return n.value
}

func (n *Name) IsEmpty() bool {
	return n == nil || n.value == ""
}

// Display title-cases every word: "ada LOVELACE" -> "Ada Lovelace".
func (n *Name) Display() string {
	if n.IsEmpty() {
		return ""
	}
	return cases.Title(language.Und).String(strings.ToLower(n.value))
}
