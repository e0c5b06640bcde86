package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/infrastructure/persistence/mappers"
	"issuetracker/internal/infrastructure/persistence/models"
	"issuetracker/internal/shared/db"
)

var _ ticket.TicketRepository = (*TicketRepository)(nil)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return t.SetID(model.ID)
}

// Update writes every mutable column, including ones cleared to zero values.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "priority", "status", "ticket_type", "assigned_user_id", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.TicketModel{}, ticketID).Error; err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), ticketID)
}

// GetByIDForUpdate locks the row with SELECT ... FOR UPDATE. SQLite has no
// row locks; its writer lock serializes the transaction instead.
func (r *TicketRepository) GetByIDForUpdate(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), ticketID)
}

func (r *TicketRepository) get(query *gorm.DB, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := query.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListByCreator(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error) {
	return r.list(ctx, "creator_id = ?", creatorID)
}

func (r *TicketRepository) ListByAssignee(ctx context.Context, assigneeID uint) ([]*ticket.Ticket, error) {
	return r.list(ctx, "assigned_user_id = ?", assigneeID)
}

func (r *TicketRepository) ListByProject(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	return r.list(ctx, "project_id = ?", projectID)
}

func (r *TicketRepository) ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error) {
	var ids []uint
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("project_id = ?", projectID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket ids: %w", err)
	}
	return ids, nil
}

func (r *TicketRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Delete(&models.TicketModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete project tickets: %w", err)
	}
	return nil
}

func (r *TicketRepository) list(ctx context.Context, query string, arg uint) ([]*ticket.Ticket, error) {
	var list []models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OldestFirst()).
		Where(query, arg).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
