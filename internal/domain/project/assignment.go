package project

import (
	"fmt"
	"time"

	"issuetracker/internal/shared/biztime"
)

// Assignment links a collaborator to a project. A (user, project) pair
// exists at most once.
type Assignment struct {
	id        uint
	projectID uint
	userID    uint
	createdAt time.Time
}

func NewAssignment(projectID, userID uint) (*Assignment, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Assignment{
		projectID: projectID,
		userID:    userID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructAssignment(id, projectID, userID uint, createdAt time.Time) *Assignment {
	return &Assignment{
		id:        id,
		projectID: projectID,
		userID:    userID,
		createdAt: createdAt,
	}
}

func (a *Assignment) ID() uint {
	return a.id
}

func (a *Assignment) ProjectID() uint {
	return a.projectID
}

func (a *Assignment) UserID() uint {
	return a.userID
}

func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	a.id = id
	return nil
}
