package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectdto "issuetracker/internal/application/project/dto"
	"issuetracker/internal/application/project/usecases"
	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/interfaces/http/handlers/testutil"
	"issuetracker/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListProjectsUC struct {
	result []*project.Project
	err    error
}

func (m *mockListProjectsUC) Execute(_ context.Context, _ *user.User) ([]*project.Project, error) {
	return m.result, m.err
}

type mockCreateProjectUC struct {
	result *project.Project
	err    error
	cmd    usecases.CreateProjectCommand
}

func (m *mockCreateProjectUC) Execute(_ context.Context, cmd usecases.CreateProjectCommand) (*project.Project, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetProjectUC struct {
	result *usecases.ProjectDetail
	err    error
}

func (m *mockGetProjectUC) Execute(_ context.Context, _ usecases.GetProjectQuery) (*usecases.ProjectDetail, error) {
	return m.result, m.err
}

type mockUpdateProjectUC struct {
	result *project.Project
	err    error
	cmd    usecases.UpdateProjectCommand
}

func (m *mockUpdateProjectUC) Execute(_ context.Context, cmd usecases.UpdateProjectCommand) (*project.Project, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteProjectUC struct {
	err    error
	called bool
}

func (m *mockDeleteProjectUC) Execute(_ context.Context, _ usecases.DeleteProjectCommand) error {
	m.called = true
	return m.err
}

type mockAssignUsersUC struct {
	result []*project.Assignment
	err    error
	cmd    usecases.AssignUsersCommand
}

func (m *mockAssignUsersUC) Execute(_ context.Context, cmd usecases.AssignUsersCommand) ([]*project.Assignment, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListAssignmentsUC struct {
	result []*project.Assignment
	err    error
}

func (m *mockListAssignmentsUC) Execute(_ context.Context, _ usecases.ListAssignmentsQuery) ([]*project.Assignment, error) {
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

type projectTestDeps struct {
	listProjectsUC    listProjectsUseCase
	createProjectUC   createProjectUseCase
	getProjectUC      getProjectUseCase
	updateProjectUC   updateProjectUseCase
	deleteProjectUC   deleteProjectUseCase
	assignUsersUC     assignUsersUseCase
	listAssignmentsUC listAssignmentsUseCase
}

func newTestProjectHandler(deps projectTestDeps) *ProjectHandler {
	return NewProjectHandler(
		deps.listProjectsUC,
		deps.createProjectUC,
		deps.getProjectUC,
		deps.updateProjectUC,
		deps.deleteProjectUC,
		deps.assignUsersUC,
		deps.listAssignmentsUC,
		testutil.NewMockLogger(),
	)
}

func newProject(t *testing.T, id, ownerID uint) *project.Project {
	t.Helper()
	now := time.Now().UTC()
	p, err := project.ReconstructProject(id, ownerID, "Alpha", "first", false, now, now)
	require.NoError(t, err)
	return p
}

// =====================================================================
// Tests
// =====================================================================

func TestProjectHandler_ListProjects(t *testing.T) {
	handler := newTestProjectHandler(projectTestDeps{
		listProjectsUC: &mockListProjectsUC{result: []*project.Project{newProject(t, 1, 2), newProject(t, 3, 2)}},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/projects", nil)
	testutil.SetActor(c, testutil.NewUser(t, 2, vo.CapabilityProjectManager))

	handler.ListProjects(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var projects []projectdto.ProjectResponse
	require.NoError(t, json.Unmarshal(resp.Data, &projects))
	assert.Len(t, projects, 2)
}

func TestProjectHandler_CreateProject_Success(t *testing.T) {
	mockUC := &mockCreateProjectUC{result: newProject(t, 1, 2)}
	handler := newTestProjectHandler(projectTestDeps{createProjectUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/projects", CreateProjectRequest{Name: "Alpha", Description: "first"})
	actor := testutil.NewUser(t, 2, vo.CapabilityProjectManager)
	testutil.SetActor(c, actor)

	handler.CreateProject(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Alpha", mockUC.cmd.Name)
	assert.Same(t, actor, mockUC.cmd.Actor)
}

func TestProjectHandler_CreateProject_MissingName(t *testing.T) {
	mockUC := &mockCreateProjectUC{}
	handler := newTestProjectHandler(projectTestDeps{createProjectUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/projects", map[string]string{"description": "x"})
	testutil.SetActor(c, testutil.NewUser(t, 2, vo.CapabilityProjectManager))

	handler.CreateProject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, mockUC.cmd.Actor)
}

func TestProjectHandler_CreateProject_Forbidden(t *testing.T) {
	handler := newTestProjectHandler(projectTestDeps{
		createProjectUC: &mockCreateProjectUC{err: errors.NewForbiddenError("missing capability project_manager")},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/projects", CreateProjectRequest{Name: "Alpha"})
	testutil.SetActor(c, testutil.NewUser(t, 2, vo.CapabilityStaff))

	handler.CreateProject(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProjectHandler_GetProject_AssigneeOrder(t *testing.T) {
	handler := newTestProjectHandler(projectTestDeps{getProjectUC: &mockGetProjectUC{result: &usecases.ProjectDetail{
		Project:       newProject(t, 1, 2),
		AssignedUsers: []*user.User{testutil.NewUser(t, 12), testutil.NewUser(t, 11)},
	}}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/projects/1", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetActor(c, testutil.NewUser(t, 2))

	handler.GetProject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var detail projectdto.ProjectDetailResponse
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	require.Len(t, detail.AssignedUsers, 2)
	assert.Equal(t, uint(12), detail.AssignedUsers[0].ID)
	assert.Equal(t, uint(11), detail.AssignedUsers[1].ID)
	assert.NotNil(t, detail.Tickets)
}

func TestProjectHandler_UpdateProject_Partial(t *testing.T) {
	mockUC := &mockUpdateProjectUC{result: newProject(t, 1, 2)}
	handler := newTestProjectHandler(projectTestDeps{updateProjectUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/projects/1", map[string]any{"is_complete": true})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetActor(c, testutil.NewUser(t, 2, vo.CapabilityProjectManager))

	handler.UpdateProject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, mockUC.cmd.Name)
	require.NotNil(t, mockUC.cmd.IsComplete)
	assert.True(t, *mockUC.cmd.IsComplete)
}

func TestProjectHandler_DeleteProject_NotOwner(t *testing.T) {
	mockUC := &mockDeleteProjectUC{err: errors.NewNotFoundError("project not found")}
	handler := newTestProjectHandler(projectTestDeps{deleteProjectUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/projects/1", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetActor(c, testutil.NewUser(t, 3, vo.CapabilityProjectManager))

	handler.DeleteProject(c)

	assert.True(t, mockUC.called)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_DeleteProject_Success(t *testing.T) {
	handler := newTestProjectHandler(projectTestDeps{deleteProjectUC: &mockDeleteProjectUC{}})

	c, _ := testutil.NewTestContext(http.MethodDelete, "/api/projects/1", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetActor(c, testutil.NewUser(t, 2, vo.CapabilityProjectManager))

	handler.DeleteProject(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
}

func TestProjectHandler_AssignUsers(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockAssignUsersUC{result: []*project.Assignment{
		project.ReconstructAssignment(1, 1, 11, now),
		project.ReconstructAssignment(2, 1, 12, now),
	}}
	handler := newTestProjectHandler(projectTestDeps{assignUsersUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/projects/1/assign-users", AssignUsersRequest{UserIDs: []uint{11, 12}})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetActor(c, testutil.NewUser(t, 2, vo.CapabilityProjectManager))

	handler.AssignUsers(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []uint{11, 12}, mockUC.cmd.UserIDs)
	assert.Equal(t, uint(1), mockUC.cmd.ProjectID)
}

func TestProjectHandler_AssignUsers_Conflict(t *testing.T) {
	handler := newTestProjectHandler(projectTestDeps{
		assignUsersUC: &mockAssignUsersUC{err: errors.NewConflictError("user 11 is already assigned to this project")},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/projects/1/assign-users", AssignUsersRequest{UserIDs: []uint{11}})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetActor(c, testutil.NewUser(t, 2, vo.CapabilityProjectManager))

	handler.AssignUsers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "conflict", resp.Error.Type)
}

func TestProjectHandler_ListAssignments_InvalidID(t *testing.T) {
	handler := newTestProjectHandler(projectTestDeps{listAssignmentsUC: &mockListAssignmentsUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/projects/0/assignments", nil)
	testutil.SetURLParam(c, "id", "0")

	handler.ListAssignments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
