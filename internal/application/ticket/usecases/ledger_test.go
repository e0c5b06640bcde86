package usecases

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuetracker/internal/domain/ticket"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/biztime"
	apperrors "issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

func TestAddCommentUseCase(t *testing.T) {
	staff := testUser(t, 2, vo.CapabilityStaff)
	tickets := ticketRepoWith(testTicket(t, 10, 1, nil))

	t.Run("any authenticated user comments", func(t *testing.T) {
		var created *ticket.Comment
		comments := &mockCommentRepository{CreateFunc: func(ctx context.Context, c *ticket.Comment) error {
			created = c
			return c.SetID(4)
		}}
		uc := NewAddCommentUseCase(tickets, comments, newTestEngine(), logger.NewNopLogger())

		c, err := uc.Execute(context.Background(), AddCommentCommand{Actor: staff, TicketID: 10, Message: "  on it  "})
		require.NoError(t, err)
		assert.Equal(t, uint(4), c.ID())
		assert.Equal(t, "on it", created.Message())
		assert.Equal(t, staff.ID(), created.AuthorID())
	})

	t.Run("message too long", func(t *testing.T) {
		uc := NewAddCommentUseCase(tickets, &mockCommentRepository{}, newTestEngine(), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), AddCommentCommand{
			Actor: staff, TicketID: 10, Message: strings.Repeat("x", ticket.MaxCommentLength+1),
		})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("missing ticket", func(t *testing.T) {
		uc := NewAddCommentUseCase(tickets, &mockCommentRepository{}, newTestEngine(), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), AddCommentCommand{Actor: staff, TicketID: 404, Message: "hi"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeleteCommentUseCase(t *testing.T) {
	author := testUser(t, 2, vo.CapabilityStaff)
	other := testUser(t, 3, vo.CapabilityStaff)
	c, err := ticket.ReconstructComment(4, 10, author.ID(), "hi", biztime.NowUTC())
	require.NoError(t, err)

	var deleted []uint
	comments := &mockCommentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Comment, error) {
			if id == 4 {
				return c, nil
			}
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = append(deleted, id)
			return nil
		},
	}
	uc := NewDeleteCommentUseCase(comments, newTestEngine(), logger.NewNopLogger())

	err = uc.Execute(context.Background(), DeleteCommentCommand{Actor: other, CommentID: 4})
	assert.True(t, apperrors.IsUnauthorizedError(err))
	assert.Empty(t, deleted)

	err = uc.Execute(context.Background(), DeleteCommentCommand{Actor: author, CommentID: 404})
	assert.True(t, apperrors.IsNotFoundError(err))

	require.NoError(t, uc.Execute(context.Background(), DeleteCommentCommand{Actor: author, CommentID: 4}))
	assert.Equal(t, []uint{4}, deleted)
}

func TestListHistoryUseCase(t *testing.T) {
	staff := testUser(t, 2, vo.CapabilityStaff)
	history := &mockHistoryRepository{
		ListByTicketFunc: func(ctx context.Context, id uint) ([]*ticket.HistoryEntry, error) {
			return []*ticket.HistoryEntry{
				ticket.ReconstructHistoryEntry(1, id, 1, ticket.FieldPriority, "Medium", "Low", biztime.NowUTC()),
			}, nil
		},
	}
	uc := NewListHistoryUseCase(ticketRepoWith(testTicket(t, 10, 1, nil)), history, newTestEngine(), logger.NewNopLogger())

	entries, err := uc.Execute(context.Background(), ListHistoryQuery{Actor: staff, TicketID: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(10), entries[0].TicketID())

	_, err = uc.Execute(context.Background(), ListHistoryQuery{Actor: staff, TicketID: 404})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUploadAttachmentUseCase(t *testing.T) {
	staff := testUser(t, 2, vo.CapabilityStaff)
	tickets := ticketRepoWith(testTicket(t, 10, 1, nil))

	t.Run("stores bytes and records metadata", func(t *testing.T) {
		blobs := newMemoryBlobStore()
		uc := NewUploadAttachmentUseCase(tickets, &mockAttachmentRepository{}, blobs, 16, newTestEngine(), logger.NewNopLogger())

		a, err := uc.Execute(context.Background(), UploadAttachmentCommand{
			Actor: staff, TicketID: 10, FileName: "../../etc/notes.txt", Content: strings.NewReader("hello"),
		})
		require.NoError(t, err)
		assert.Equal(t, "notes.txt", a.FileName())
		assert.Equal(t, int64(5), a.Size())
		assert.Equal(t, staff.ID(), a.UploaderID())
		assert.Equal(t, []byte("hello"), blobs.blobs[a.StorageRef()])
	})

	t.Run("oversized body is rejected and removed", func(t *testing.T) {
		blobs := newMemoryBlobStore()
		uc := NewUploadAttachmentUseCase(tickets, &mockAttachmentRepository{}, blobs, 4, newTestEngine(), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), UploadAttachmentCommand{
			Actor: staff, TicketID: 10, FileName: "big.bin", Content: strings.NewReader("0123456789"),
		})
		assert.True(t, apperrors.IsValidationError(err))
		assert.Empty(t, blobs.blobs)
	})

	t.Run("declared size over limit is rejected before storing", func(t *testing.T) {
		blobs := newMemoryBlobStore()
		uc := NewUploadAttachmentUseCase(tickets, &mockAttachmentRepository{}, blobs, 4, newTestEngine(), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), UploadAttachmentCommand{
			Actor: staff, TicketID: 10, FileName: "big.bin", Content: strings.NewReader("x"), Size: 100,
		})
		assert.True(t, apperrors.IsValidationError(err))
		assert.Zero(t, blobs.next)
	})

	t.Run("empty body", func(t *testing.T) {
		blobs := newMemoryBlobStore()
		uc := NewUploadAttachmentUseCase(tickets, &mockAttachmentRepository{}, blobs, 4, newTestEngine(), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), UploadAttachmentCommand{
			Actor: staff, TicketID: 10, FileName: "empty", Content: strings.NewReader(""),
		})
		assert.True(t, apperrors.IsValidationError(err))
		assert.Empty(t, blobs.blobs)
	})

	t.Run("record failure removes blob", func(t *testing.T) {
		blobs := newMemoryBlobStore()
		attachments := &mockAttachmentRepository{CreateFunc: func(ctx context.Context, a *ticket.Attachment) error {
			return errors.New("db down")
		}}
		uc := NewUploadAttachmentUseCase(tickets, attachments, blobs, 16, newTestEngine(), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), UploadAttachmentCommand{
			Actor: staff, TicketID: 10, FileName: "a.txt", Content: strings.NewReader("hello"),
		})
		require.Error(t, err)
		assert.Nil(t, apperrors.GetAppError(err))
		assert.Empty(t, blobs.blobs)
	})
}

func TestDownloadAndDeleteAttachment(t *testing.T) {
	uploader := testUser(t, 2, vo.CapabilityStaff)
	other := testUser(t, 3, vo.CapabilityStaff)

	blobs := newMemoryBlobStore()
	blobs.blobs["blob-a"] = []byte("payload")
	a := ticket.ReconstructAttachment(7, 10, uploader.ID(), "blob-a", "a.txt", "text/plain", 7, biztime.NowUTC())

	var deleted []uint
	attachments := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Attachment, error) {
			if id == 7 {
				return a, nil
			}
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = append(deleted, id)
			return nil
		},
	}

	download := NewDownloadAttachmentUseCase(attachments, blobs, newTestEngine(), logger.NewNopLogger())
	d, err := download.Execute(context.Background(), DownloadAttachmentQuery{Actor: other, AttachmentID: 7})
	require.NoError(t, err)
	body, err := io.ReadAll(d.Content)
	require.NoError(t, err)
	require.NoError(t, d.Content.Close())
	assert.Equal(t, "payload", string(body))
	assert.Equal(t, "a.txt", d.Attachment.FileName())

	_, err = download.Execute(context.Background(), DownloadAttachmentQuery{Actor: other, AttachmentID: 404})
	assert.True(t, apperrors.IsNotFoundError(err))

	del := NewDeleteAttachmentUseCase(attachments, blobs, newTestEngine(), logger.NewNopLogger())
	err = del.Execute(context.Background(), DeleteAttachmentCommand{Actor: other, AttachmentID: 7})
	assert.True(t, apperrors.IsUnauthorizedError(err))
	assert.Empty(t, deleted)

	require.NoError(t, del.Execute(context.Background(), DeleteAttachmentCommand{Actor: uploader, AttachmentID: 7}))
	assert.Equal(t, []uint{7}, deleted)
	assert.Equal(t, []string{"blob-a"}, blobs.deleted)

	_, err = download.Execute(context.Background(), DownloadAttachmentQuery{Actor: other, AttachmentID: 7})
	assert.True(t, apperrors.IsNotFoundError(err))
}
