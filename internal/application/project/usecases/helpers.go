package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/project"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

func loadProject(ctx context.Context, repo project.Repository, id uint, log logger.Interface) (*project.Project, error) {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get project", "error", err, "project_id", id)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}
	return p, nil
}
