package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	directoryUC "github.com/campushire/talent-hub/internal/application/usecase/directory"
	profileUC "github.com/campushire/talent-hub/internal/application/usecase/profile"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type DirectoryHandler struct {
	directoryUseCase        *directoryUC.DirectoryUseCase
	getPublicProfileUseCase *profileUC.GetPublicProfileUseCase
	logger                  logger.Logger
}

func NewDirectoryHandler(listUC *directoryUC.DirectoryUseCase, detailUC *profileUC.GetPublicProfileUseCase, log logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUseCase:        listUC,
		getPublicProfileUseCase: detailUC,
		logger:                  log,
	}
}

func (h *DirectoryHandler) ListTalents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	input := directoryUC.ListInput{
		Query: c.Query("q"),
		Sort:  c.DefaultQuery("sort", "recent"),
		Page:  page,
		Limit: limit,
	}

	output, err := h.directoryUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PublicProfileDTO, len(output.Profiles))
	for i, p := range output.Profiles {
		dtos[i] = ToPublicProfileDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *DirectoryHandler) GetTalent(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}

	input := profileUC.GetPublicProfileInput{ProfileID: profileID}
	if claims, ok := GetClaimsFromGinContext(c); ok {
		input.CallerID = claims.UserID
		input.CallerAdmin = claims.IsAdmin()
	}

	output, err := h.getPublicProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	skills := make([]SkillDTO, len(output.Skills))
	for i, s := range output.Skills {
		skills[i] = ToSkillDTO(s)
	}
	projects := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		projects[i] = ToProjectDTO(p)
	}

	detail := PublicProfileDetailDTO{
		PublicProfileDTO: ToPublicProfileDTO(output.Profile),
		Bio:              output.Profile.Bio,
		Links:            LinksDTO(output.Profile.Links),
		Skills:           skills,
		Projects:         projects,
		SkillCount:       output.SkillCount,
		ProjectCount:     output.ProjectCount,
	}
	c.JSON(http.StatusOK, detail)
}
