package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketdto "issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/interfaces/http/handlers/common"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/utils"
)

type TicketHandler struct {
	listTicketsUC   listTicketsUseCase
	createTicketUC  createTicketUseCase
	getTicketUC     getTicketUseCase
	updateTicketUC  updateTicketUseCase
	deleteTicketUC  deleteTicketUseCase
	listCommentsUC  listCommentsUseCase
	addCommentUC    addCommentUseCase
	deleteCommentUC deleteCommentUseCase
	listHistoryUC   listHistoryUseCase
	logger          logger.Interface
}

func NewTicketHandler(
	listTicketsUC listTicketsUseCase,
	createTicketUC createTicketUseCase,
	getTicketUC getTicketUseCase,
	updateTicketUC updateTicketUseCase,
	deleteTicketUC deleteTicketUseCase,
	listCommentsUC listCommentsUseCase,
	addCommentUC addCommentUseCase,
	deleteCommentUC deleteCommentUseCase,
	listHistoryUC listHistoryUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:   listTicketsUC,
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		updateTicketUC:  updateTicketUC,
		deleteTicketUC:  deleteTicketUC,
		listCommentsUC:  listCommentsUC,
		addCommentUC:    addCommentUC,
		deleteCommentUC: deleteCommentUC,
		listHistoryUC:   listHistoryUC,
		logger:          logger,
	}
}

// ListTickets godoc
// @Summary List my tickets
// @Description Submitters and superusers get the tickets they created. Everyone else gets the tickets assigned to them.
// @Tags tickets
// @Security Bearer
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]ticketdto.TicketResponse}
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.listTicketsUC.Execute(c.Request.Context(), common.CurrentActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", ticketdto.ToTicketResponses(tickets))
}

// CreateTicket godoc
// @Summary Create a ticket
// @Description Requires the submitter capability. The project and the assigned user must exist.
// @Tags tickets
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body CreateTicketRequest true "Ticket data"
// @Success 201 {object} utils.APIResponse{data=ticketdto.TicketResponse}
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 403 {object} utils.APIResponse "Missing capability"
// @Failure 404 {object} utils.APIResponse "Project or user not found"
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	t, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(common.CurrentActor(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ticketdto.ToTicketResponse(t), "Ticket created successfully")
}

// GetTicket godoc
// @Summary Get a ticket
// @Description Ticket with rendered description, comments, history and attachments
// @Tags tickets
// @Security Bearer
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=ticketdto.TicketDetailResponse}
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    common.CurrentActor(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := ticketdto.TicketDetailResponse{
		TicketResponse:  ticketdto.ToTicketResponse(detail.Ticket),
		DescriptionHTML: detail.DescriptionHTML,
		Comments:        make([]ticketdto.CommentResponse, 0, len(detail.Comments)),
		History:         ticketdto.ToHistoryResponses(detail.History),
		Attachments:     ticketdto.ToAttachmentResponses(detail.Attachments),
	}
	for _, rc := range detail.Comments {
		cr := ticketdto.ToCommentResponse(rc.Comment)
		cr.MessageHTML = rc.HTML
		resp.Comments = append(resp.Comments, cr)
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateTicket godoc
// @Summary Update a ticket
// @Description Partial update by the creator or a superuser. Every changed field is recorded in the ticket history.
// @Tags tickets
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body UpdateTicketRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=UpdateTicketResponse}
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 401 {object} utils.APIResponse "Not the ticket creator"
// @Failure 404 {object} utils.APIResponse "Ticket or user not found"
// @Router /api/tickets/{id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(common.CurrentActor(c), ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", UpdateTicketResponse{
		Ticket:  ticketdto.ToTicketResponse(result.Ticket),
		Changes: ticketdto.ToHistoryResponses(result.Changes),
	})
}

// DeleteTicket godoc
// @Summary Delete a ticket
// @Description Removes the ticket with its comments, history and attachments
// @Tags tickets
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 204 "No content"
// @Failure 401 {object} utils.APIResponse "Not the ticket creator"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /api/tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Actor:    common.CurrentActor(c),
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListComments godoc
// @Summary List ticket comments
// @Tags comments
// @Security Bearer
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=[]ticketdto.CommentResponse}
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /api/tickets/{id}/comments [get]
func (h *TicketHandler) ListComments(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:    common.CurrentActor(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketdto.ToCommentResponses(comments))
}

// AddComment godoc
// @Summary Comment on a ticket
// @Tags comments
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body AddCommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse{data=ticketdto.CommentResponse}
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /api/tickets/{id}/comments [post]
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	comment, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:    common.CurrentActor(c),
		TicketID: ticketID,
		Message:  req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ticketdto.ToCommentResponse(comment), "Comment added successfully")
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Author or superuser only
// @Tags comments
// @Security Bearer
// @Param id path int true "Comment ID"
// @Success 204 "No content"
// @Failure 401 {object} utils.APIResponse "Not the comment author"
// @Failure 404 {object} utils.APIResponse "Comment not found"
// @Router /api/comments/{id} [delete]
func (h *TicketHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseUintParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		Actor:     common.CurrentActor(c),
		CommentID: commentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListHistory godoc
// @Summary Ticket change history
// @Tags tickets
// @Security Bearer
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=[]ticketdto.HistoryResponse}
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /api/tickets/{id}/history [get]
func (h *TicketHandler) ListHistory(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entries, err := h.listHistoryUC.Execute(c.Request.Context(), usecases.ListHistoryQuery{
		Actor:    common.CurrentActor(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketdto.ToHistoryResponses(entries))
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "ticket")
}
