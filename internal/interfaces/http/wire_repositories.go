package http

import (
	"gorm.io/gorm"

	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo       user.Repository
	projectRepo    project.Repository
	assignmentRepo project.AssignmentRepository
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	historyRepo    ticket.HistoryRepository
	attachmentRepo ticket.AttachmentRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:       repository.NewUserRepository(db),
		projectRepo:    repository.NewProjectRepository(db),
		assignmentRepo: repository.NewAssignmentRepository(db),
		ticketRepo:     repository.NewTicketRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		historyRepo:    repository.NewHistoryRepository(db),
		attachmentRepo: repository.NewAttachmentRepository(db),
	}
}
