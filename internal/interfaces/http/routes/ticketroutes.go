package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "issuetracker/internal/interfaces/http/handlers/ticket"
	"issuetracker/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	AttachmentHandler *tickethandlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	requireAuth := config.AuthMiddleware.RequireAuth()

	tickets := api.Group("/tickets")
	tickets.Use(requireAuth)
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", config.TicketHandler.CreateTicket)

		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/history", config.TicketHandler.ListHistory)
		tickets.GET("/:id/attachments", config.AttachmentHandler.ListAttachments)
		tickets.POST("/:id/attachments", config.AttachmentHandler.UploadAttachment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}

	comments := api.Group("/comments")
	comments.Use(requireAuth)
	{
		comments.DELETE("/:id", config.TicketHandler.DeleteComment)
	}

	attachments := api.Group("/attachments")
	attachments.Use(requireAuth)
	{
		attachments.GET("/:id/download", config.AttachmentHandler.DownloadAttachment)
		attachments.DELETE("/:id", config.AttachmentHandler.DeleteAttachment)
	}
}
