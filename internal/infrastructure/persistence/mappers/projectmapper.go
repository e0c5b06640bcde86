package mappers

import (
	"issuetracker/internal/domain/project"
	"issuetracker/internal/infrastructure/persistence/models"
)

// ProjectMapper converts projects and assignments.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
	AssignmentToModel(a *project.Assignment) *models.ProjectAssignmentModel
	AssignmentToDomain(model *models.ProjectAssignmentModel) *project.Assignment
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Name:        p.Name(),
		Description: p.Description(),
		IsComplete:  p.IsComplete(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	return project.ReconstructProject(
		model.ID,
		model.OwnerID,
		model.Name,
		model.Description,
		model.IsComplete,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ProjectMapperImpl) AssignmentToModel(a *project.Assignment) *models.ProjectAssignmentModel {
	return &models.ProjectAssignmentModel{
		ID:        a.ID(),
		ProjectID: a.ProjectID(),
		UserID:    a.UserID(),
		CreatedAt: a.CreatedAt(),
	}
}

func (m *ProjectMapperImpl) AssignmentToDomain(model *models.ProjectAssignmentModel) *project.Assignment {
	return project.ReconstructAssignment(model.ID, model.ProjectID, model.UserID, model.CreatedAt)
}
