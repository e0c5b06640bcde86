package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"issuetracker/internal/domain/project"
	"issuetracker/internal/infrastructure/persistence/mappers"
	"issuetracker/internal/infrastructure/persistence/models"
	"issuetracker/internal/shared/db"
)

var _ project.Repository = (*ProjectRepository)(nil)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "is_complete", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.ProjectModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*project.Project, error) {
	var list []models.ProjectModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OldestFirst()).
		Where("owner_id = ?", ownerID).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(list))
	for i := range list {
		p, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
