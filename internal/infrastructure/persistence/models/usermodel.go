package models

import (
	"time"

	"gorm.io/datatypes"

	"issuetracker/internal/shared/constants"
)

// UserModel is the persistence shape of user.User. Capabilities is a JSON
// array of capability names.
type UserModel struct {
	ID           uint           `gorm:"primaryKey"`
	Email        string         `gorm:"uniqueIndex;not null;size:255"`
	Name         string         `gorm:"not null;size:255"`
	LastName     string         `gorm:"not null;size:255;default:''"`
	Capabilities datatypes.JSON `gorm:"not null"`
	IsActive     bool           `gorm:"not null"`
	PasswordHash string         `gorm:"not null;size:255"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
