package routes

import (
	"github.com/gin-gonic/gin"

	"issuetracker/internal/interfaces/http/handlers"
	"issuetracker/internal/interfaces/http/middleware"
)

type ProjectRouteConfig struct {
	ProjectHandler *handlers.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProjectRoutes(api *gin.RouterGroup, config *ProjectRouteConfig) {
	projects := api.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.GET("", config.ProjectHandler.ListProjects)
		projects.POST("", config.ProjectHandler.CreateProject)

		projects.POST("/:id/assign-users", config.ProjectHandler.AssignUsers)
		projects.GET("/:id/assignments", config.ProjectHandler.ListAssignments)

		projects.GET("/:id", config.ProjectHandler.GetProject)
		projects.PATCH("/:id", config.ProjectHandler.UpdateProject)
		projects.DELETE("/:id", config.ProjectHandler.DeleteProject)
	}
}
