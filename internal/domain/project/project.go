package project

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"issuetracker/internal/shared/biztime"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 200
)

type Project struct {
	id          uint
	ownerID     uint
	name        string
	description string
	isComplete  bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(ownerID uint, name, description string) (*Project, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Project{
		ownerID:     ownerID,
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id, ownerID uint,
	name, description string,
	isComplete bool,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	return &Project{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		isComplete:  isComplete,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("project name exceeds maximum length of %d characters", MaxNameLength)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("project description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}

func (p *Project) ID() uint {
	return p.id
}

// OwnerID is the creating user.
func (p *Project) OwnerID() uint {
	return p.ownerID
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) IsComplete() bool {
	return p.isComplete
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	p.name = name
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Project) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	p.description = description
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Project) SetComplete(complete bool) {
	if p.isComplete == complete {
		return
	}
	p.isComplete = complete
	p.updatedAt = biztime.NowUTC()
}
