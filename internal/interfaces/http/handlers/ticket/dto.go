package ticket

import (
	"bytes"
	"encoding/json"

	ticketdto "issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/domain/user"
)

type CreateTicketRequest struct {
	ProjectID      uint   `json:"project_id" binding:"required"`
	Title          string `json:"title" binding:"required,max=255"`
	Description    string `json:"description" binding:"max=5000"`
	Priority       string `json:"priority" binding:"required"`
	Status         string `json:"status" binding:"required"`
	TicketType     string `json:"ticket_type" binding:"required"`
	AssignedUserID *uint  `json:"assigned_user_id"`
}

func (r *CreateTicketRequest) ToCommand(actor *user.User) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:          actor,
		ProjectID:      r.ProjectID,
		Title:          r.Title,
		Description:    r.Description,
		Priority:       r.Priority,
		Status:         r.Status,
		TicketType:     r.TicketType,
		AssignedUserID: r.AssignedUserID,
	}
}

// OptionalUint tells an absent field apart from an explicit null.
type OptionalUint struct {
	Set   bool
	Value *uint
}

func (o *OptionalUint) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// UpdateTicketRequest is a partial update. Sending "assigned_user_id": null
// removes the assignee.
type UpdateTicketRequest struct {
	Title          *string      `json:"title"`
	Description    *string      `json:"description"`
	Priority       *string      `json:"priority"`
	Status         *string      `json:"status"`
	TicketType     *string      `json:"ticket_type"`
	AssignedUserID OptionalUint `json:"assigned_user_id" swaggertype:"integer"`
}

func (r *UpdateTicketRequest) ToCommand(actor *user.User, ticketID uint) usecases.UpdateTicketCommand {
	cmd := usecases.UpdateTicketCommand{
		Actor:       actor,
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		TicketType:  r.TicketType,
	}
	if r.AssignedUserID.Set {
		if r.AssignedUserID.Value == nil {
			cmd.ClearAssignee = true
		} else {
			cmd.AssignedUserID = r.AssignedUserID.Value
		}
	}
	return cmd
}

type AddCommentRequest struct {
	Message string `json:"message" binding:"required,max=200"`
}

// UpdateTicketResponse carries the history entries written by the update.
type UpdateTicketResponse struct {
	Ticket  ticketdto.TicketResponse    `json:"ticket"`
	Changes []ticketdto.HistoryResponse `json:"changes"`
}
