package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/infrastructure/persistence/mappers"
	"issuetracker/internal/infrastructure/persistence/models"
	"issuetracker/internal/shared/db"
)

var _ ticket.HistoryRepository = (*HistoryRepository)(nil)

type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *HistoryRepository) CreateBatch(ctx context.Context, entries []*ticket.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]*models.TicketHistoryModel, len(entries))
	for i, e := range entries {
		rows[i] = r.mapper.HistoryToModel(e)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create history entries: %w", err)
	}

	for i, row := range rows {
		if err := entries[i].SetID(row.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *HistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var list []models.TicketHistoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OldestFirst()).
		Where("ticket_id = ?", ticketID).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, len(list))
	for i := range list {
		entries[i] = r.mapper.HistoryToDomain(&list[i])
	}
	return entries, nil
}

func (r *HistoryRepository) DeleteByTickets(ctx context.Context, ticketIDs []uint) error {
	if len(ticketIDs) == 0 {
		return nil
	}
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id IN ?", ticketIDs).
		Delete(&models.TicketHistoryModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}
