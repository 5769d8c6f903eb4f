package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	notificationUC "github.com/campushire/talent-hub/internal/application/usecase/notification"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type NotificationHandler struct {
	notificationUseCase *notificationUC.NotificationUseCase
	logger              logger.Logger
}

func NewNotificationHandler(uc *notificationUC.NotificationUseCase, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{notificationUseCase: uc, logger: log}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	notifications, err := h.notificationUseCase.ListNotifications(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]NotificationDTO, len(notifications))
	for i, n := range notifications {
		dtos[i] = ToNotificationDTO(n)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid notification ID", err))
		return
	}

	if err := h.notificationUseCase.MarkRead(c.Request.Context(), notificationID, userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
