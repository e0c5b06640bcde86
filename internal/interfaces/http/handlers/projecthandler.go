package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectdto "issuetracker/internal/application/project/dto"
	"issuetracker/internal/application/project/usecases"
	ticketdto "issuetracker/internal/application/ticket/dto"
	userdto "issuetracker/internal/application/user/dto"
	"issuetracker/internal/interfaces/http/handlers/common"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/utils"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectRequest is a partial update; omitted fields keep their value.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsComplete  *bool   `json:"is_complete"`
}

type AssignUsersRequest struct {
	UserIDs []uint `json:"user_ids"`
}

type ProjectHandler struct {
	listProjectsUC    listProjectsUseCase
	createProjectUC   createProjectUseCase
	getProjectUC      getProjectUseCase
	updateProjectUC   updateProjectUseCase
	deleteProjectUC   deleteProjectUseCase
	assignUsersUC     assignUsersUseCase
	listAssignmentsUC listAssignmentsUseCase
	logger            logger.Interface
}

func NewProjectHandler(
	listProjectsUC listProjectsUseCase,
	createProjectUC createProjectUseCase,
	getProjectUC getProjectUseCase,
	updateProjectUC updateProjectUseCase,
	deleteProjectUC deleteProjectUseCase,
	assignUsersUC assignUsersUseCase,
	listAssignmentsUC listAssignmentsUseCase,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUC:    listProjectsUC,
		createProjectUC:   createProjectUC,
		getProjectUC:      getProjectUC,
		updateProjectUC:   updateProjectUC,
		deleteProjectUC:   deleteProjectUC,
		assignUsersUC:     assignUsersUC,
		listAssignmentsUC: listAssignmentsUC,
		logger:            logger,
	}
}

// ListProjects godoc
// @Summary List projects
// @Description Returns the projects owned by the caller; superusers see every project
// @Tags projects
// @Security Bearer
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]projectdto.ProjectResponse}
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.listProjectsUC.Execute(c.Request.Context(), common.CurrentActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", projectdto.ToProjectResponses(projects))
}

// CreateProject godoc
// @Summary Create a project
// @Description The caller becomes the owner. Requires the project_manager capability.
// @Tags projects
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Project data"
// @Success 201 {object} utils.APIResponse{data=projectdto.ProjectResponse}
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Missing capability"
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, err := h.createProjectUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Actor:       common.CurrentActor(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, projectdto.ToProjectResponse(p), "Project created successfully")
}

// GetProject godoc
// @Summary Get a project
// @Description Project with its assignees in assignment order and its tickets
// @Tags projects
// @Security Bearer
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utils.APIResponse{data=projectdto.ProjectDetailResponse}
// @Failure 404 {object} utils.APIResponse "Project not found"
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		Actor:     common.CurrentActor(c),
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := projectdto.ProjectDetailResponse{
		ProjectResponse: projectdto.ToProjectResponse(detail.Project),
		AssignedUsers:   make([]userdto.UserSummary, 0, len(detail.AssignedUsers)),
		Tickets:         ticketdto.ToTicketResponses(detail.Tickets),
	}
	for _, u := range detail.AssignedUsers {
		resp.AssignedUsers = append(resp.AssignedUsers, userdto.ToUserSummary(u))
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateProject godoc
// @Summary Update a project
// @Description Partial update of name, description or completion flag. Owner or superuser only.
// @Tags projects
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body UpdateProjectRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=projectdto.ProjectResponse}
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 403 {object} utils.APIResponse "Missing capability"
// @Failure 404 {object} utils.APIResponse "Project not found"
// @Router /api/projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, err := h.updateProjectUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		Actor:       common.CurrentActor(c),
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		IsComplete:  req.IsComplete,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated successfully", projectdto.ToProjectResponse(p))
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Removes the project with its assignments, tickets, comments, history and attachments
// @Tags projects
// @Security Bearer
// @Param id path int true "Project ID"
// @Success 204 "No content"
// @Failure 403 {object} utils.APIResponse "Missing capability"
// @Failure 404 {object} utils.APIResponse "Project not found"
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		Actor:     common.CurrentActor(c),
		ProjectID: projectID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AssignUsers godoc
// @Summary Assign users to a project
// @Description All-or-nothing batch. Fails when any user is unknown or already assigned.
// @Tags projects
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body AssignUsersRequest true "Users to assign"
// @Success 201 {object} utils.APIResponse{data=[]projectdto.AssignmentResponse}
// @Failure 400 {object} utils.APIResponse "Validation error or duplicate assignment"
// @Failure 403 {object} utils.APIResponse "Missing capability"
// @Failure 404 {object} utils.APIResponse "Project or user not found"
// @Router /api/projects/{id}/assign-users [post]
func (h *ProjectHandler) AssignUsers(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	assignments, err := h.assignUsersUC.Execute(c.Request.Context(), usecases.AssignUsersCommand{
		Actor:     common.CurrentActor(c),
		ProjectID: projectID,
		UserIDs:   req.UserIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, projectdto.ToAssignmentResponses(assignments), "Users assigned successfully")
}

// ListAssignments godoc
// @Summary List project assignments
// @Tags projects
// @Security Bearer
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utils.APIResponse{data=[]projectdto.AssignmentResponse}
// @Failure 404 {object} utils.APIResponse "Project not found"
// @Router /api/projects/{id}/assignments [get]
func (h *ProjectHandler) ListAssignments(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignments, err := h.listAssignmentsUC.Execute(c.Request.Context(), usecases.ListAssignmentsQuery{
		Actor:     common.CurrentActor(c),
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", projectdto.ToAssignmentResponses(assignments))
}
