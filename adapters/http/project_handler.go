package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	projectUC "github.com/campushire/talent-hub/internal/application/usecase/project"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type ProjectHandler struct {
	createProjectUseCase *projectUC.CreateProjectUseCase
	listProjectsUseCase  *projectUC.ListProjectsUseCase
	updateProjectUseCase *projectUC.UpdateProjectUseCase
	deleteProjectUseCase *projectUC.DeleteProjectUseCase
	logger               logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase: createUC,
		listProjectsUseCase:  listUC,
		updateProjectUseCase: updateUC,
		deleteProjectUseCase: deleteUC,
		logger:               log,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	var req CreateOrUpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid project data", err))
		return
	}

	input := projectUC.CreateProjectInput{
		OwnerID:       userID,
		Title:         req.Title,
		Description:   req.Description,
		Stack:         req.Stack,
		RepositoryURL: req.RepositoryURL,
		LiveURL:       req.LiveURL,
	}

	output, err := h.createProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project_id": output.ProjectID})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	var req CreateOrUpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid project data", err))
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID:     projectID,
		OwnerID:       userID,
		Title:         req.Title,
		Description:   req.Description,
		Stack:         req.Stack,
		RepositoryURL: req.RepositoryURL,
		LiveURL:       req.LiveURL,
	}

	output, err := h.updateProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	input := projectUC.DeleteProjectInput{ProjectID: projectID, OwnerID: userID}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	input := projectUC.ListProjectsInput{OwnerID: userID, Page: page, Limit: limit}
	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}
