package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	skillUC "github.com/campushire/talent-hub/internal/application/usecase/skill"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{skillUseCase: uc, logger: log}
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	var req CreateOrUpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill data", err))
		return
	}

	input := skillUC.CreateSkillInput{
		OwnerID:     userID,
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
	}

	s, err := h.skillUseCase.CreateSkill(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToSkillDTO(s))
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	skillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill ID", err))
		return
	}
	var req CreateOrUpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill data", err))
		return
	}

	input := skillUC.UpdateSkillInput{
		SkillID:     skillID,
		OwnerID:     userID,
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
	}

	s, err := h.skillUseCase.UpdateSkill(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTO(s))
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	skillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill ID", err))
		return
	}

	if err := h.skillUseCase.DeleteSkill(c.Request.Context(), skillID, userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}

	skills, err := h.skillUseCase.ListSkills(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = ToSkillDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}
