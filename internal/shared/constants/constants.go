package constants

const (
	// HTTP headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyActor     = "actor"
	ContextKeyRequestID = "request_id"

	// Bearer token prefix
	BearerPrefix = "Bearer "

	// Database table names
	TableUsers              = "users"
	TableProjects           = "projects"
	TableProjectAssignments = "project_assignments"
	TableTickets            = "tickets"
	TableTicketComments     = "ticket_comments"
	TableTicketHistory      = "ticket_history"
	TableTicketAttachments  = "ticket_attachments"
)
