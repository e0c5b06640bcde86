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

var _ ticket.AttachmentRepository = (*AttachmentRepository)(nil)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, attachmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return r.mapper.AttachmentToDomain(&model), nil
}

func (r *AttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	return r.ListByTickets(ctx, []uint{ticketID})
}

func (r *AttachmentRepository) ListByTickets(ctx context.Context, ticketIDs []uint) ([]*ticket.Attachment, error) {
	if len(ticketIDs) == 0 {
		return []*ticket.Attachment{}, nil
	}

	var list []models.AttachmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OldestFirst()).
		Where("ticket_id IN ?", ticketIDs).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, len(list))
	for i := range list {
		attachments[i] = r.mapper.AttachmentToDomain(&list[i])
	}
	return attachments, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.AttachmentModel{}, attachmentID).Error; err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

func (r *AttachmentRepository) DeleteByTickets(ctx context.Context, ticketIDs []uint) error {
	if len(ticketIDs) == 0 {
		return nil
	}
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id IN ?", ticketIDs).
		Delete(&models.AttachmentModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}
	return nil
}
