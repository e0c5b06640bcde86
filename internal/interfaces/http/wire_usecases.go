package http

import (
	projectUsecases "issuetracker/internal/application/project/usecases"
	ticketUsecases "issuetracker/internal/application/ticket/usecases"
	userUsecases "issuetracker/internal/application/user/usecases"
)

type allUseCases struct {
	// Identity
	register       *userUsecases.RegisterUseCase
	login          *userUsecases.LoginUseCase
	getCurrentUser *userUsecases.GetCurrentUserUseCase

	// Projects
	listProjects    *projectUsecases.ListProjectsUseCase
	createProject   *projectUsecases.CreateProjectUseCase
	getProject      *projectUsecases.GetProjectUseCase
	updateProject   *projectUsecases.UpdateProjectUseCase
	deleteProject   *projectUsecases.DeleteProjectUseCase
	assignUsers     *projectUsecases.AssignUsersUseCase
	listAssignments *projectUsecases.ListAssignmentsUseCase

	// Tickets
	listTickets  *ticketUsecases.ListTicketsUseCase
	createTicket *ticketUsecases.CreateTicketUseCase
	getTicket    *ticketUsecases.GetTicketUseCase
	updateTicket *ticketUsecases.UpdateTicketUseCase
	deleteTicket *ticketUsecases.DeleteTicketUseCase

	// Comments and history
	listComments  *ticketUsecases.ListCommentsUseCase
	addComment    *ticketUsecases.AddCommentUseCase
	deleteComment *ticketUsecases.DeleteCommentUseCase
	listHistory   *ticketUsecases.ListHistoryUseCase

	// Attachments
	listAttachments    *ticketUsecases.ListAttachmentsUseCase
	uploadAttachment   *ticketUsecases.UploadAttachmentUseCase
	downloadAttachment *ticketUsecases.DownloadAttachmentUseCase
	deleteAttachment   *ticketUsecases.DeleteAttachmentUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	authz := c.authz

	c.ucs = &allUseCases{
		register:       userUsecases.NewRegisterUseCase(r.userRepo, c.hasher, c.cfg.Auth.Password.MinLength, log),
		login:          userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtSvc, log),
		getCurrentUser: userUsecases.NewGetCurrentUserUseCase(r.userRepo, log),

		listProjects:  projectUsecases.NewListProjectsUseCase(r.projectRepo, authz, log),
		createProject: projectUsecases.NewCreateProjectUseCase(r.projectRepo, authz, log),
		getProject: projectUsecases.NewGetProjectUseCase(
			r.projectRepo, r.assignmentRepo, r.userRepo, r.ticketRepo, authz, log),
		updateProject: projectUsecases.NewUpdateProjectUseCase(r.projectRepo, authz, log),
		deleteProject: projectUsecases.NewDeleteProjectUseCase(
			r.projectRepo, r.assignmentRepo, r.ticketRepo, r.commentRepo, r.historyRepo, r.attachmentRepo,
			c.blobs, c.txManager, authz, log),
		assignUsers: projectUsecases.NewAssignUsersUseCase(
			r.projectRepo, r.assignmentRepo, r.userRepo, newAssignmentNotifier(c.cfg, log), c.txManager, authz, log),
		listAssignments: projectUsecases.NewListAssignmentsUseCase(r.projectRepo, r.assignmentRepo, authz, log),

		listTickets:  ticketUsecases.NewListTicketsUseCase(r.ticketRepo, authz, log),
		createTicket: ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, r.projectRepo, r.userRepo, authz, log),
		getTicket: ticketUsecases.NewGetTicketUseCase(
			r.ticketRepo, r.commentRepo, r.historyRepo, r.attachmentRepo, c.renderer, authz, log),
		updateTicket: ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, r.historyRepo, r.userRepo, c.txManager, authz, log),
		deleteTicket: ticketUsecases.NewDeleteTicketUseCase(
			r.ticketRepo, r.commentRepo, r.historyRepo, r.attachmentRepo, c.blobs, c.txManager, authz, log),

		listComments:  ticketUsecases.NewListCommentsUseCase(r.ticketRepo, r.commentRepo, authz, log),
		addComment:    ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, authz, log),
		deleteComment: ticketUsecases.NewDeleteCommentUseCase(r.commentRepo, authz, log),
		listHistory:   ticketUsecases.NewListHistoryUseCase(r.ticketRepo, r.historyRepo, authz, log),

		listAttachments: ticketUsecases.NewListAttachmentsUseCase(r.ticketRepo, r.attachmentRepo, authz, log),
		uploadAttachment: ticketUsecases.NewUploadAttachmentUseCase(
			r.ticketRepo, r.attachmentRepo, c.blobs, c.cfg.Storage.MaxFileBytes, authz, log),
		downloadAttachment: ticketUsecases.NewDownloadAttachmentUseCase(r.attachmentRepo, c.blobs, authz, log),
		deleteAttachment:   ticketUsecases.NewDeleteAttachmentUseCase(r.attachmentRepo, c.blobs, authz, log),
	}
}
