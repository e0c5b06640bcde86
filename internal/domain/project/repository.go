package project

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns nil, nil when the project does not exist.
	GetByID(ctx context.Context, id uint) (*Project, error)
	// ListByOwner returns the owner's projects, oldest first.
	ListByOwner(ctx context.Context, ownerID uint) ([]*Project, error)
}

type AssignmentRepository interface {
	// CreateBatch inserts the assignments in slice order. A duplicate
	// (user, project) pair fails the whole call with a conflict error.
	CreateBatch(ctx context.Context, assignments []*Assignment) error
	// ListByProject returns assignments in insertion order.
	ListByProject(ctx context.Context, projectID uint) ([]*Assignment, error)
	// AssignedUserIDs returns the subset of userIDs already assigned.
	AssignedUserIDs(ctx context.Context, projectID uint, userIDs []uint) ([]uint, error)
	DeleteByProject(ctx context.Context, projectID uint) error
}
