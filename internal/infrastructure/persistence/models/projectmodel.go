package models

import (
	"time"

	"issuetracker/internal/shared/constants"
)

// No foreign keys: cascades are performed by the application inside one
// transaction.
type ProjectModel struct {
	ID          uint      `gorm:"primaryKey"`
	OwnerID     uint      `gorm:"not null;index"`
	Name        string    `gorm:"not null;size:100"`
	Description string    `gorm:"not null;size:200;default:''"`
	IsComplete  bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}

// ProjectAssignmentModel rows are unique per (user, project); the unique
// index is what rejects concurrent duplicate assignment.
type ProjectAssignmentModel struct {
	ID        uint      `gorm:"primaryKey"`
	ProjectID uint      `gorm:"not null;uniqueIndex:idx_project_assignment_user,priority:2;index"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_project_assignment_user,priority:1"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ProjectAssignmentModel) TableName() string {
	return constants.TableProjectAssignments
}
