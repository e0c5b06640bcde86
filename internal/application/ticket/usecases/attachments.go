package usecases

import (
	"context"
	"fmt"
	"io"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

// UploadAttachmentCommand carries the request body. Size is the length the
// client declared, 0 when unknown; the stored length is checked regardless.
type UploadAttachmentCommand struct {
	Actor    *user.User
	TicketID uint
	FileName string
	Content  io.Reader
	Size     int64
}

type UploadAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	blobs          ticket.BlobStore
	maxBytes       int64
	authz          *permission.Engine
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobs ticket.BlobStore,
	maxBytes int64,
	authz *permission.Engine,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		maxBytes:       maxBytes,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*ticket.Attachment, error) {
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceAttachment, permission.ActionCreate, nil); err != nil {
		return nil, err
	}
	if cmd.Content == nil {
		return nil, errors.NewValidationError("file is required")
	}
	if cmd.Size > uc.maxBytes {
		return nil, uc.tooLarge()
	}

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}

	// Read one byte past the limit so an oversized body is detectable.
	blob, err := uc.blobs.Store(ctx, io.LimitReader(cmd.Content, uc.maxBytes+1), cmd.FileName)
	if err != nil {
		uc.logger.Errorw("failed to store attachment", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}
	switch {
	case blob.Size == 0:
		removeBlobs(ctx, uc.blobs, []string{blob.Ref}, uc.logger)
		return nil, errors.NewValidationError("file is empty")
	case blob.Size > uc.maxBytes:
		removeBlobs(ctx, uc.blobs, []string{blob.Ref}, uc.logger)
		return nil, uc.tooLarge()
	}

	a, err := ticket.NewAttachment(t.ID(), cmd.Actor.ID(), blob.Ref, cmd.FileName, blob.ContentType, blob.Size)
	if err != nil {
		removeBlobs(ctx, uc.blobs, []string{blob.Ref}, uc.logger)
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.attachmentRepo.Create(ctx, a); err != nil {
		removeBlobs(ctx, uc.blobs, []string{blob.Ref}, uc.logger)
		uc.logger.Errorw("failed to record attachment", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}

	uc.logger.Infow("attachment uploaded", "attachment_id", a.ID(), "ticket_id", t.ID(), "size", a.Size())
	return a, nil
}

func (uc *UploadAttachmentUseCase) tooLarge() error {
	return errors.NewValidationError(fmt.Sprintf("file exceeds maximum size of %d bytes", uc.maxBytes))
}

type ListAttachmentsQuery struct {
	Actor    *user.User
	TicketID uint
}

type ListAttachmentsUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	authz          *permission.Engine
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	authz *permission.Engine,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]*ticket.Attachment, error) {
	if err := uc.authz.Authorize(query.Actor, permission.ResourceAttachment, permission.ActionList, nil); err != nil {
		return nil, err
	}
	if _, err := loadTicket(ctx, uc.ticketRepo, query.TicketID, uc.logger); err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err, "ticket_id", query.TicketID)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

type DownloadAttachmentQuery struct {
	Actor        *user.User
	AttachmentID uint
}

// Download is an open attachment. The caller must close Content.
type Download struct {
	Attachment *ticket.Attachment
	Content    io.ReadCloser
}

type DownloadAttachmentUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	blobs          ticket.BlobStore
	authz          *permission.Engine
	logger         logger.Interface
}

func NewDownloadAttachmentUseCase(
	attachmentRepo ticket.AttachmentRepository,
	blobs ticket.BlobStore,
	authz *permission.Engine,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*Download, error) {
	if err := uc.authz.Authorize(query.Actor, permission.ResourceAttachment, permission.ActionRetrieve, nil); err != nil {
		return nil, err
	}

	a, err := loadAttachment(ctx, uc.attachmentRepo, query.AttachmentID, uc.logger)
	if err != nil {
		return nil, err
	}

	content, err := uc.blobs.Open(ctx, a.StorageRef())
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("attachment blob is missing", "attachment_id", a.ID(), "ref", a.StorageRef())
			return nil, errors.NewNotFoundError("attachment content not found")
		}
		uc.logger.Errorw("failed to open attachment", "error", err, "attachment_id", a.ID())
		return nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return &Download{Attachment: a, Content: content}, nil
}

type DeleteAttachmentCommand struct {
	Actor        *user.User
	AttachmentID uint
}

type DeleteAttachmentUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	blobs          ticket.BlobStore
	authz          *permission.Engine
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	attachmentRepo ticket.AttachmentRepository,
	blobs ticket.BlobStore,
	authz *permission.Engine,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		authz:          authz,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	if err := uc.authz.Precheck(cmd.Actor, permission.ResourceAttachment, permission.ActionDelete); err != nil {
		return err
	}

	a, err := loadAttachment(ctx, uc.attachmentRepo, cmd.AttachmentID, uc.logger)
	if err != nil {
		return err
	}
	if err := uc.authz.Authorize(cmd.Actor, permission.ResourceAttachment, permission.ActionDelete, a); err != nil {
		return err
	}

	if err := uc.attachmentRepo.Delete(ctx, a.ID()); err != nil {
		uc.logger.Errorw("failed to delete attachment", "error", err, "attachment_id", a.ID())
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	removeBlobs(ctx, uc.blobs, []string{a.StorageRef()}, uc.logger)

	uc.logger.Infow("attachment deleted", "attachment_id", a.ID(), "ticket_id", a.TicketID())
	return nil
}

func loadAttachment(ctx context.Context, repo ticket.AttachmentRepository, id uint, log logger.Interface) (*ticket.Attachment, error) {
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get attachment", "error", err, "attachment_id", id)
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("attachment not found")
	}
	return a, nil
}
