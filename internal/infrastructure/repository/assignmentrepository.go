package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"issuetracker/internal/domain/project"
	"issuetracker/internal/infrastructure/persistence/mappers"
	"issuetracker/internal/infrastructure/persistence/models"
	"issuetracker/internal/shared/db"
	apperrors "issuetracker/internal/shared/errors"
)

var _ project.AssignmentRepository = (*AssignmentRepository)(nil)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

// CreateBatch writes all rows in one INSERT so the batch succeeds or fails
// as a unit even outside a transaction.
func (r *AssignmentRepository) CreateBatch(ctx context.Context, assignments []*project.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	rows := make([]*models.ProjectAssignmentModel, len(assignments))
	for i, a := range assignments {
		rows[i] = r.mapper.AssignmentToModel(a)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&rows).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user is already assigned to this project")
		}
		return fmt.Errorf("failed to create assignments: %w", err)
	}

	for i, row := range rows {
		if err := assignments[i].SetID(row.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *AssignmentRepository) ListByProject(ctx context.Context, projectID uint) ([]*project.Assignment, error) {
	var list []models.ProjectAssignmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*project.Assignment, len(list))
	for i := range list {
		assignments[i] = r.mapper.AssignmentToDomain(&list[i])
	}
	return assignments, nil
}

func (r *AssignmentRepository) AssignedUserIDs(ctx context.Context, projectID uint, userIDs []uint) ([]uint, error) {
	if len(userIDs) == 0 {
		return []uint{}, nil
	}

	var ids []uint
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectAssignmentModel{}).
		Where("project_id = ? AND user_id IN ?", projectID, userIDs).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check assignments: %w", err)
	}
	return ids, nil
}

func (r *AssignmentRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Delete(&models.ProjectAssignmentModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete assignments: %w", err)
	}
	return nil
}
