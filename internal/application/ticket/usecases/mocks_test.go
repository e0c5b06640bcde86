package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/ticket"
	tvo "issuetracker/internal/domain/ticket/valueobjects"
	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/biztime"
	apperrors "issuetracker/internal/shared/errors"
)

type mockTicketRepository struct {
	CreateFunc         func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc         func(ctx context.Context, id uint) error
	GetByIDFunc        func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetForUpdateFunc   func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListByCreatorFunc  func(ctx context.Context, id uint) ([]*ticket.Ticket, error)
	ListByAssigneeFunc func(ctx context.Context, id uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

// GetByIDForUpdate falls back to GetByIDFunc so tests that do not care
// about the locking read see the same ticket.
func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockTicketRepository) ListByCreator(ctx context.Context, id uint) ([]*ticket.Ticket, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByAssignee(ctx context.Context, id uint) ([]*ticket.Ticket, error) {
	if m.ListByAssigneeFunc != nil {
		return m.ListByAssigneeFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByProject(ctx context.Context, id uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) ListIDsByProject(ctx context.Context, id uint) ([]uint, error) {
	return nil, nil
}

func (m *mockTicketRepository) DeleteByProject(ctx context.Context, id uint) error { return nil }

type mockCommentRepository struct {
	CreateFunc          func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ticket.Comment, error)
	ListByTicketFunc    func(ctx context.Context, id uint) ([]*ticket.Comment, error)
	DeleteFunc          func(ctx context.Context, id uint) error
	DeleteByTicketsFunc func(ctx context.Context, ids []uint) error
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, id uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTickets(ctx context.Context, ids []uint) error {
	if m.DeleteByTicketsFunc != nil {
		return m.DeleteByTicketsFunc(ctx, ids)
	}
	return nil
}

type mockHistoryRepository struct {
	CreateBatchFunc     func(ctx context.Context, entries []*ticket.HistoryEntry) error
	ListByTicketFunc    func(ctx context.Context, id uint) ([]*ticket.HistoryEntry, error)
	DeleteByTicketsFunc func(ctx context.Context, ids []uint) error
}

func (m *mockHistoryRepository) CreateBatch(ctx context.Context, entries []*ticket.HistoryEntry) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, entries)
	}
	return nil
}

func (m *mockHistoryRepository) ListByTicket(ctx context.Context, id uint) ([]*ticket.HistoryEntry, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHistoryRepository) DeleteByTickets(ctx context.Context, ids []uint) error {
	if m.DeleteByTicketsFunc != nil {
		return m.DeleteByTicketsFunc(ctx, ids)
	}
	return nil
}

type mockAttachmentRepository struct {
	CreateFunc          func(ctx context.Context, a *ticket.Attachment) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ticket.Attachment, error)
	ListByTicketFunc    func(ctx context.Context, id uint) ([]*ticket.Attachment, error)
	ListByTicketsFunc   func(ctx context.Context, ids []uint) ([]*ticket.Attachment, error)
	DeleteFunc          func(ctx context.Context, id uint) error
	DeleteByTicketsFunc func(ctx context.Context, ids []uint) error
}

func (m *mockAttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, id uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByTickets(ctx context.Context, ids []uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketsFunc != nil {
		return m.ListByTicketsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAttachmentRepository) DeleteByTickets(ctx context.Context, ids []uint) error {
	if m.DeleteByTicketsFunc != nil {
		return m.DeleteByTicketsFunc(ctx, ids)
	}
	return nil
}

type mockProjectReader struct {
	projects map[uint]*project.Project
}

func (m *mockProjectReader) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	return m.projects[id], nil
}

type mockUserReader struct {
	users map[uint]*user.User
}

func (m *mockUserReader) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
}

// memoryBlobStore keeps blobs in a map keyed by a counter.
type memoryBlobStore struct {
	blobs   map[string][]byte
	next    int
	deleted []string
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{blobs: map[string][]byte{}}
}

func (s *memoryBlobStore) Store(ctx context.Context, content io.Reader, fileName string) (*ticket.StoredBlob, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	s.next++
	ref := fmt.Sprintf("blob-%d", s.next)
	s.blobs[ref] = data
	return &ticket.StoredBlob{Ref: ref, ContentType: "text/plain; charset=utf-8", Size: int64(len(data))}, nil
}

func (s *memoryBlobStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	data, ok := s.blobs[ref]
	if !ok {
		return nil, apperrors.NewNotFoundError("blob not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memoryBlobStore) Delete(ctx context.Context, ref string) error {
	delete(s.blobs, ref)
	s.deleted = append(s.deleted, ref)
	return nil
}

type stubRenderer struct{}

func (stubRenderer) Render(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	return "<p>" + markdown + "</p>", nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type staticTable map[string]bool

func (s staticTable) Allows(subject string, resource permission.Resource, action permission.Action) (bool, error) {
	if s[subject+"|"+string(resource)+"|*"] {
		return true, nil
	}
	return s[subject+"|"+string(resource)+"|"+string(action)], nil
}

func newTestEngine() *permission.Engine {
	return permission.NewEngine(staticTable{
		"authenticated|ticket|list":     true,
		"authenticated|ticket|retrieve": true,
		"authenticated|ticket|update":   true,
		"authenticated|ticket|delete":   true,
		"authenticated|comment|*":       true,
		"authenticated|history|*":       true,
		"authenticated|attachment|*":    true,
		"submitter|ticket|create":       true,
	})
}

func testUser(t *testing.T, id uint, caps ...vo.Capability) *user.User {
	t.Helper()
	email, err := vo.NewEmail(fmt.Sprintf("user%d@example.com", id))
	require.NoError(t, err)
	name, err := vo.NewName("User")
	require.NoError(t, err)
	set, err := vo.NewCapabilitySet(caps...)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, email, name, nil, set, true, "hash", biztime.NowUTC(), biztime.NowUTC())
	require.NoError(t, err)
	return u
}

func testTicket(t *testing.T, id, creatorID uint, assignee *uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, 5, creatorID, "Login fails", "steps",
		tvo.PriorityMedium, tvo.StatusOpen, tvo.TypeBug, assignee, biztime.NowUTC(), biztime.NowUTC())
	require.NoError(t, err)
	return tk
}

func ticketRepoWith(tickets ...*ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			for _, tk := range tickets {
				if tk.ID() == id {
					return tk, nil
				}
			}
			return nil, nil
		},
	}
}
