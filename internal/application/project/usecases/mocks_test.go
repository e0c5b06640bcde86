package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/ticket"
	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/biztime"
)

type mockProjectRepository struct {
	CreateFunc      func(ctx context.Context, p *project.Project) error
	UpdateFunc      func(ctx context.Context, p *project.Project) error
	DeleteFunc      func(ctx context.Context, id uint) error
	GetByIDFunc     func(ctx context.Context, id uint) (*project.Project, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uint) ([]*project.Project, error)
}

func (m *mockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*project.Project, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

type mockAssignmentRepository struct {
	CreateBatchFunc     func(ctx context.Context, assignments []*project.Assignment) error
	ListByProjectFunc   func(ctx context.Context, projectID uint) ([]*project.Assignment, error)
	AssignedUserIDsFunc func(ctx context.Context, projectID uint, userIDs []uint) ([]uint, error)
	DeleteByProjectFunc func(ctx context.Context, projectID uint) error
}

func (m *mockAssignmentRepository) CreateBatch(ctx context.Context, assignments []*project.Assignment) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, assignments)
	}
	return nil
}

func (m *mockAssignmentRepository) ListByProject(ctx context.Context, projectID uint) ([]*project.Assignment, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) AssignedUserIDs(ctx context.Context, projectID uint, userIDs []uint) ([]uint, error) {
	if m.AssignedUserIDsFunc != nil {
		return m.AssignedUserIDsFunc(ctx, projectID, userIDs)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	if m.DeleteByProjectFunc != nil {
		return m.DeleteByProjectFunc(ctx, projectID)
	}
	return nil
}

type mockUserRepository struct {
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockTicketRepository struct {
	ListByProjectFunc    func(ctx context.Context, projectID uint) ([]*ticket.Ticket, error)
	ListIDsByProjectFunc func(ctx context.Context, projectID uint) ([]uint, error)
	DeleteByProjectFunc  func(ctx context.Context, projectID uint) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error          { return nil }
func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) ListByCreator(ctx context.Context, id uint) ([]*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) ListByAssignee(ctx context.Context, id uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) ListByProject(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListIDsByProject(ctx context.Context, projectID uint) ([]uint, error) {
	if m.ListIDsByProjectFunc != nil {
		return m.ListIDsByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockTicketRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	if m.DeleteByProjectFunc != nil {
		return m.DeleteByProjectFunc(ctx, projectID)
	}
	return nil
}

// mockTicketChildren stands in for the comment, history and attachment
// repositories, which the project cascade only reads and bulk-deletes.
type mockTicketChildren struct {
	Attachments []*ticket.Attachment
	Deleted     map[string][]uint
}

func (m *mockTicketChildren) record(kind string, ids []uint) error {
	if m.Deleted == nil {
		m.Deleted = map[string][]uint{}
	}
	m.Deleted[kind] = ids
	return nil
}

type mockCommentRepository struct{ *mockTicketChildren }

func (m mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error { return nil }
func (m mockCommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	return nil, nil
}
func (m mockCommentRepository) ListByTicket(ctx context.Context, id uint) ([]*ticket.Comment, error) {
	return nil, nil
}
func (m mockCommentRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m mockCommentRepository) DeleteByTickets(ctx context.Context, ids []uint) error {
	return m.record("comments", ids)
}

type mockHistoryRepository struct{ *mockTicketChildren }

func (m mockHistoryRepository) CreateBatch(ctx context.Context, e []*ticket.HistoryEntry) error {
	return nil
}
func (m mockHistoryRepository) ListByTicket(ctx context.Context, id uint) ([]*ticket.HistoryEntry, error) {
	return nil, nil
}
func (m mockHistoryRepository) DeleteByTickets(ctx context.Context, ids []uint) error {
	return m.record("history", ids)
}

type mockAttachmentRepository struct{ *mockTicketChildren }

func (m mockAttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error { return nil }
func (m mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	return nil, nil
}
func (m mockAttachmentRepository) ListByTicket(ctx context.Context, id uint) ([]*ticket.Attachment, error) {
	return nil, nil
}
func (m mockAttachmentRepository) ListByTickets(ctx context.Context, ids []uint) ([]*ticket.Attachment, error) {
	return m.Attachments, nil
}
func (m mockAttachmentRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m mockAttachmentRepository) DeleteByTickets(ctx context.Context, ids []uint) error {
	return m.record("attachments", ids)
}

type mockBlobRemover struct {
	Removed []string
}

func (m *mockBlobRemover) Delete(ctx context.Context, ref string) error {
	m.Removed = append(m.Removed, ref)
	return nil
}

type mockNotifier struct {
	Notified []uint
	Err      error
}

func (m *mockNotifier) NotifyAssigned(ctx context.Context, assignee *user.User, p *project.Project) error {
	m.Notified = append(m.Notified, assignee.ID())
	return m.Err
}

// passthroughTx runs fn directly; rollback is covered by the sqlite tests.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type staticTable map[string]bool

func (s staticTable) Allows(subject string, resource permission.Resource, action permission.Action) (bool, error) {
	return s[subject+"|"+string(resource)+"|"+string(action)], nil
}

func newTestEngine() *permission.Engine {
	return permission.NewEngine(staticTable{
		"authenticated|project|list":     true,
		"authenticated|project|retrieve": true,
		"project_manager|project|create": true,
		"project_manager|project|update": true,
		"project_manager|project|delete": true,
		"project_manager|project|assign": true,
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

func testProject(t *testing.T, id, ownerID uint) *project.Project {
	t.Helper()
	p, err := project.ReconstructProject(id, ownerID, "Alpha", "first", false, biztime.NowUTC(), biztime.NowUTC())
	require.NoError(t, err)
	return p
}

func projectRepoWith(p *project.Project) *mockProjectRepository {
	return &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			if p != nil && id == p.ID() {
				return p, nil
			}
			return nil, nil
		},
	}
}
