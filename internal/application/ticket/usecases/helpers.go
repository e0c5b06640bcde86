package usecases

import (
	"context"
	"fmt"

	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

func loadTicket(ctx context.Context, repo ticket.TicketRepository, id uint, log logger.Interface) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get ticket", "error", err, "ticket_id", id)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func ensureProject(ctx context.Context, repo ProjectReader, id uint, log logger.Interface) error {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get project", "error", err, "project_id", id)
		return fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("project not found")
	}
	return nil
}

// ensureAssignee checks that a non-nil assignee id names an existing user.
func ensureAssignee(ctx context.Context, repo UserReader, id *uint, log logger.Interface) error {
	if id == nil {
		return nil
	}
	u, err := repo.GetByID(ctx, *id)
	if err != nil {
		log.Errorw("failed to get assignee", "error", err, "user_id", *id)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError(fmt.Sprintf("user %d not found", *id))
	}
	return nil
}

func removeBlobs(ctx context.Context, blobs ticket.BlobStore, refs []string, log logger.Interface) {
	for _, ref := range refs {
		if err := blobs.Delete(ctx, ref); err != nil {
			log.Warnw("failed to remove attachment blob", "error", err, "ref", ref)
		}
	}
}
