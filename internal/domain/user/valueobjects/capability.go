package valueobjects

import (
	"fmt"
	"slices"
	"strings"
)

// Capability is an independent grant held by a user. Capabilities do not
// imply one another.
type Capability string

const (
	CapabilityStaff          Capability = "staff"
	CapabilitySuperuser      Capability = "superuser"
	CapabilitySubmitter      Capability = "submitter"
	CapabilityProjectManager Capability = "project_manager"
)

var knownCapabilities = []Capability{
	CapabilityStaff,
	CapabilitySuperuser,
	CapabilitySubmitter,
	CapabilityProjectManager,
}

func ParseCapability(s string) (Capability, error) {
	c := Capability(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid capability: %s", s)
	}
	return c, nil
}

func (c Capability) IsValid() bool {
	return slices.Contains(knownCapabilities, c)
}

func (c Capability) String() string {
	return string(c)
}

// CapabilitySet is a duplicate-free set of capabilities kept in canonical
// order.
type CapabilitySet struct {
	items []Capability
}

func NewCapabilitySet(caps ...Capability) (CapabilitySet, error) {
	var set CapabilitySet
	for _, c := range caps {
		if !c.IsValid() {
			return CapabilitySet{}, fmt.Errorf("invalid capability: %s", c)
		}
		set = set.With(c)
	}
	return set, nil
}

// ParseCapabilitySet builds a set from stored strings.
func ParseCapabilitySet(values []string) (CapabilitySet, error) {
	caps := make([]Capability, 0, len(values))
	for _, v := range values {
		c, err := ParseCapability(v)
		if err != nil {
			return CapabilitySet{}, err
		}
		caps = append(caps, c)
	}
	return NewCapabilitySet(caps...)
}

func (s CapabilitySet) Has(c Capability) bool {
	return slices.Contains(s.items, c)
}

// With returns a copy of the set including c.
func (s CapabilitySet) With(c Capability) CapabilitySet {
	if s.Has(c) {
		return s
	}
	items := make([]Capability, 0, len(s.items)+1)
	for _, known := range knownCapabilities {
		if known == c || slices.Contains(s.items, known) {
			items = append(items, known)
		}
	}
	return CapabilitySet{items: items}
}

// Without returns a copy of the set excluding c.
func (s CapabilitySet) Without(c Capability) CapabilitySet {
	items := make([]Capability, 0, len(s.items))
	for _, existing := range s.items {
		if existing != c {
			items = append(items, existing)
		}
	}
	return CapabilitySet{items: items}
}

func (s CapabilitySet) Slice() []Capability {
	return slices.Clone(s.items)
}

func (s CapabilitySet) Strings() []string {
	out := make([]string, len(s.items))
	for i, c := range s.items {
		out[i] = string(c)
	}
	return out
}

func (s CapabilitySet) Len() int {
	return len(s.items)
}
