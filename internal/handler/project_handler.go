package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focusboard/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

type createProjectRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, apiErr := h.projectService.List(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	project, apiErr := h.projectService.Create(c.Request.Context(), service.CreateProjectInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": project})
}
