package ticket

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	ticketdto "issuetracker/internal/application/ticket/dto"
	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/interfaces/http/handlers/common"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/utils"
)

const attachmentFormField = "file"

type AttachmentHandler struct {
	listAttachmentsUC    listAttachmentsUseCase
	uploadAttachmentUC   uploadAttachmentUseCase
	downloadAttachmentUC downloadAttachmentUseCase
	deleteAttachmentUC   deleteAttachmentUseCase
	logger               logger.Interface
}

func NewAttachmentHandler(
	listAttachmentsUC listAttachmentsUseCase,
	uploadAttachmentUC uploadAttachmentUseCase,
	downloadAttachmentUC downloadAttachmentUseCase,
	deleteAttachmentUC deleteAttachmentUseCase,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		listAttachmentsUC:    listAttachmentsUC,
		uploadAttachmentUC:   uploadAttachmentUC,
		downloadAttachmentUC: downloadAttachmentUC,
		deleteAttachmentUC:   deleteAttachmentUC,
		logger:               logger,
	}
}

// ListAttachments godoc
// @Summary List ticket attachments
// @Tags attachments
// @Security Bearer
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=[]ticketdto.AttachmentResponse}
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /api/tickets/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachments, err := h.listAttachmentsUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		Actor:    common.CurrentActor(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketdto.ToAttachmentResponses(attachments))
}

// UploadAttachment godoc
// @Summary Upload an attachment
// @Description Multipart upload in the "file" field. Empty or oversized files are rejected.
// @Tags attachments
// @Security Bearer
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ticket ID"
// @Param file formData file true "Attachment"
// @Success 201 {object} utils.APIResponse{data=ticketdto.AttachmentResponse}
// @Failure 400 {object} utils.APIResponse "Missing, empty or oversized file"
// @Failure 404 {object} utils.APIResponse "Ticket not found"
// @Router /api/tickets/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	header, err := c.FormFile(attachmentFormField)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required", err.Error()))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	attachment, err := h.uploadAttachmentUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		Actor:    common.CurrentActor(c),
		TicketID: ticketID,
		FileName: header.Filename,
		Content:  file,
		Size:     header.Size,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ticketdto.ToAttachmentResponse(attachment), "Attachment uploaded successfully")
}

// DownloadAttachment godoc
// @Summary Download an attachment
// @Tags attachments
// @Security Bearer
// @Produce octet-stream
// @Param id path int true "Attachment ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse "Attachment not found"
// @Router /api/attachments/{id}/download [get]
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	attachmentID, err := utils.ParseUintParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	download, err := h.downloadAttachmentUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		Actor:        common.CurrentActor(c),
		AttachmentID: attachmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer download.Content.Close()

	a := download.Attachment
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": a.FileName()})
	c.DataFromReader(http.StatusOK, a.Size(), a.ContentType(), download.Content, map[string]string{
		"Content-Disposition": disposition,
	})
}

// DeleteAttachment godoc
// @Summary Delete an attachment
// @Description Uploader or superuser only
// @Tags attachments
// @Security Bearer
// @Param id path int true "Attachment ID"
// @Success 204 "No content"
// @Failure 401 {object} utils.APIResponse "Not the uploader"
// @Failure 404 {object} utils.APIResponse "Attachment not found"
// @Router /api/attachments/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, err := utils.ParseUintParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteAttachmentUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		Actor:        common.CurrentActor(c),
		AttachmentID: attachmentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
