package dto

import (
	"time"

	"issuetracker/internal/domain/ticket"
)

type TicketResponse struct {
	ID             uint      `json:"id"`
	ProjectID      uint      `json:"project_id"`
	CreatorID      uint      `json:"creator_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	TicketType     string    `json:"ticket_type"`
	AssignedUserID *uint     `json:"assigned_user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type TicketDetailResponse struct {
	TicketResponse
	DescriptionHTML string               `json:"description_html"`
	Comments        []CommentResponse    `json:"comments"`
	History         []HistoryResponse    `json:"history"`
	Attachments     []AttachmentResponse `json:"attachments"`
}

type CommentResponse struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	AuthorID    uint      `json:"author_id"`
	Message     string    `json:"message"`
	MessageHTML string    `json:"message_html,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryResponse struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	ChangedBy uint      `json:"changed_by"`
	FieldName string    `json:"field_name"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentResponse struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	UploaderID  uint      `json:"uploader_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
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

func ToTicketResponses(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = ToTicketResponse(t)
	}
	return out
}

func ToCommentResponse(c *ticket.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Message:   c.Message(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToCommentResponses(comments []*ticket.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = ToCommentResponse(c)
	}
	return out
}

func ToHistoryResponses(entries []*ticket.HistoryEntry) []HistoryResponse {
	out := make([]HistoryResponse, len(entries))
	for i, h := range entries {
		out[i] = HistoryResponse{
			ID:        h.ID(),
			TicketID:  h.TicketID(),
			ChangedBy: h.ChangedBy(),
			FieldName: h.FieldName(),
			OldValue:  h.OldValue(),
			NewValue:  h.NewValue(),
			CreatedAt: h.CreatedAt(),
		}
	}
	return out
}

func ToAttachmentResponse(a *ticket.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		UploaderID:  a.UploaderID(),
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		CreatedAt:   a.CreatedAt(),
	}
}

func ToAttachmentResponses(attachments []*ticket.Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, len(attachments))
	for i, a := range attachments {
		out[i] = ToAttachmentResponse(a)
	}
	return out
}
