package models

import (
	"time"

	"issuetracker/internal/shared/constants"
)

type TicketModel struct {
	ID             uint      `gorm:"primaryKey"`
	ProjectID      uint      `gorm:"not null;index"`
	CreatorID      uint      `gorm:"not null;index"`
	Title          string    `gorm:"not null;size:255"`
	Description    string    `gorm:"type:text"`
	Priority       string    `gorm:"not null;size:20"`
	Status         string    `gorm:"not null;size:20;index"`
	TicketType     string    `gorm:"not null;size:20"`
	AssignedUserID *uint     `gorm:"index"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	AuthorID  uint      `gorm:"not null;index"`
	Message   string    `gorm:"not null;size:200"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}

type TicketHistoryModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	ChangedBy uint      `gorm:"not null"`
	FieldName string    `gorm:"not null;size:50"`
	OldValue  string    `gorm:"not null;size:100;default:''"`
	NewValue  string    `gorm:"not null;size:100;default:''"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (TicketHistoryModel) TableName() string {
	return constants.TableTicketHistory
}

type AttachmentModel struct {
	ID          uint      `gorm:"primaryKey"`
	TicketID    uint      `gorm:"not null;index"`
	UploaderID  uint      `gorm:"not null;index"`
	StorageRef  string    `gorm:"not null;size:255;uniqueIndex"`
	FileName    string    `gorm:"not null;size:255"`
	ContentType string    `gorm:"not null;size:100"`
	Size        int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (AttachmentModel) TableName() string {
	return constants.TableTicketAttachments
}
