package mappers

import (
	"fmt"

	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/infrastructure/persistence/models"
)

// TicketMapper converts tickets and the rows hanging off them.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel
	HistoryToDomain(model *models.TicketHistoryModel) *ticket.HistoryEntry
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		ProjectID:      t.ProjectID(),
		CreatorID:      t.CreatorID(),
		Title:          t.Title(),
		Description:    t.Description(),
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		TicketType:     t.Type().String(),
		AssignedUserID: t.AssignedUserID(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(
		model.ID,
		model.ProjectID,
		model.CreatorID,
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		vo.TicketType(model.TicketType),
		model.AssignedUserID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket (id=%d): %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Message:   c.Message(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(model.ID, model.TicketID, model.AuthorID, model.Message, model.CreatedAt)
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		ChangedBy: h.ChangedBy(),
		FieldName: h.FieldName(),
		OldValue:  h.OldValue(),
		NewValue:  h.NewValue(),
		CreatedAt: h.CreatedAt(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) *ticket.HistoryEntry {
	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.TicketID,
		model.ChangedBy,
		model.FieldName,
		model.OldValue,
		model.NewValue,
		model.CreatedAt,
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		UploaderID:  a.UploaderID(),
		StorageRef:  a.StorageRef(),
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		CreatedAt:   a.CreatedAt(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.UploaderID,
		model.StorageRef,
		model.FileName,
		model.ContentType,
		model.Size,
		model.CreatedAt,
	)
}
