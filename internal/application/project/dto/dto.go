package dto

import (
	"time"

	ticketdto "issuetracker/internal/application/ticket/dto"
	userdto "issuetracker/internal/application/user/dto"
	"issuetracker/internal/domain/project"
)

type ProjectResponse struct {
	ID          uint      `json:"id"`
	OwnerID     uint      `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectDetailResponse lists assignees in assignment order.
type ProjectDetailResponse struct {
	ProjectResponse
	AssignedUsers []userdto.UserSummary      `json:"assigned_users"`
	Tickets       []ticketdto.TicketResponse `json:"tickets"`
}

type AssignmentResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"project_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Name:        p.Name(),
		Description: p.Description(),
		IsComplete:  p.IsComplete(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ToProjectResponses(projects []*project.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = ToProjectResponse(p)
	}
	return out
}

func ToAssignmentResponses(assignments []*project.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		out[i] = AssignmentResponse{
			ID:        a.ID(),
			ProjectID: a.ProjectID(),
			UserID:    a.UserID(),
			CreatedAt: a.CreatedAt(),
		}
	}
	return out
}
