package usecases

import (
	"context"

	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
)

// ProjectReader is the slice of the project repository tickets depend on.
type ProjectReader interface {
	GetByID(ctx context.Context, id uint) (*project.Project, error)
}

// UserReader resolves assignees.
type UserReader interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// MarkdownRenderer turns user-authored text into sanitized HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
