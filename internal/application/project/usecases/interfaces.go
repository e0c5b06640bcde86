package usecases

import (
	"context"

	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
)

// AssignmentNotifier tells a user they were added to a project. Failures
// are logged by callers and never fail the assignment.
type AssignmentNotifier interface {
	NotifyAssigned(ctx context.Context, assignee *user.User, p *project.Project) error
}

// BlobRemover deletes stored attachment bytes by reference.
type BlobRemover interface {
	Delete(ctx context.Context, ref string) error
}
