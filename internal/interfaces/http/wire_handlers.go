package http

import (
	"issuetracker/internal/interfaces/http/handlers"
	tickethandlers "issuetracker/internal/interfaces/http/handlers/ticket"
)

type allHandlers struct {
	authHandler       *handlers.AuthHandler
	projectHandler    *handlers.ProjectHandler
	healthHandler     *handlers.HealthHandler
	ticketHandler     *tickethandlers.TicketHandler
	attachmentHandler *tickethandlers.AttachmentHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.authMiddleware = c.newAuthMiddleware()

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(u.register, u.login, log),
		projectHandler: handlers.NewProjectHandler(
			u.listProjects, u.createProject, u.getProject, u.updateProject,
			u.deleteProject, u.assignUsers, u.listAssignments, log),
		healthHandler: handlers.NewHealthHandler(c.db, log),
		ticketHandler: tickethandlers.NewTicketHandler(
			u.listTickets, u.createTicket, u.getTicket, u.updateTicket, u.deleteTicket,
			u.listComments, u.addComment, u.deleteComment, u.listHistory, log),
		attachmentHandler: tickethandlers.NewAttachmentHandler(
			u.listAttachments, u.uploadAttachment, u.downloadAttachment, u.deleteAttachment, log),
	}
}
