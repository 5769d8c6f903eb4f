package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	moderationUC "github.com/campushire/talent-hub/internal/application/usecase/moderation"
	"github.com/campushire/talent-hub/internal/domain/moderation"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type AdminHandler struct {
	applyDecisionUseCase *moderationUC.ApplyDecisionUseCase
	listPendingUseCase   *moderationUC.ListPendingUseCase
	logger               logger.Logger
}

func NewAdminHandler(applyUC *moderationUC.ApplyDecisionUseCase, pendingUC *moderationUC.ListPendingUseCase, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		applyDecisionUseCase: applyUC,
		listPendingUseCase:   pendingUC,
		logger:               log,
	}
}

func reviewerFromContext(c *gin.Context) (moderation.Reviewer, bool) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		return moderation.Reviewer{}, false
	}
	return moderation.Reviewer{UserID: claims.UserID, Admin: claims.IsAdmin()}, true
}

func (h *AdminHandler) ListPending(c *gin.Context) {
	reviewer, ok := reviewerFromContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("reviewer identity not found in context"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	input := moderationUC.ListPendingInput{Reviewer: reviewer, Page: page, Limit: limit}
	output, err := h.listPendingUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PendingItemDTO, len(output.Items))
	for i, item := range output.Items {
		dtos[i] = PendingItemDTO{
			Profile:      ToProfileDTO(item.Profile),
			SkillCount:   item.SkillCount,
			ProjectCount: item.ProjectCount,
		}
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *AdminHandler) ApplyDecision(c *gin.Context) {
	reviewer, ok := reviewerFromContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("reviewer identity not found in context"))
		return
	}
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid decision payload", err))
		return
	}

	input := moderationUC.ApplyDecisionInput{
		Reviewer: reviewer,
		Decision: moderation.Decision{
			ProfileID:        profileID,
			Kind:             moderation.DecisionKind(req.Kind),
			Note:             req.Note,
			RequestedChanges: req.RequestedChanges,
		},
	}

	output, err := h.applyDecisionUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
