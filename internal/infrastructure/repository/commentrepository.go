package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/infrastructure/persistence/mappers"
	"issuetracker/internal/infrastructure/persistence/models"
	"issuetracker/internal/shared/db"
)

var _ ticket.CommentRepository = (*CommentRepository)(nil)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	var model models.CommentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var list []models.CommentModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OldestFirst()).
		Where("ticket_id = ?", ticketID).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(list))
	for i := range list {
		c, err := r.mapper.CommentToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.CommentModel{}, commentID).Error; err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) DeleteByTickets(ctx context.Context, ticketIDs []uint) error {
	if len(ticketIDs) == 0 {
		return nil
	}
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id IN ?", ticketIDs).
		Delete(&models.CommentModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	return nil
}
