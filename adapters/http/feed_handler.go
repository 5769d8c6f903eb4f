package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	feedUC "github.com/campushire/talent-hub/internal/application/usecase/feed"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type FeedHandler struct {
	feedUseCase *feedUC.FeedUseCase
	logger      logger.Logger
}

func NewFeedHandler(uc *feedUC.FeedUseCase, log logger.Logger) *FeedHandler {
	return &FeedHandler{feedUseCase: uc, logger: log}
}

func (h *FeedHandler) GetFeed(c *gin.Context) {
	feed, err := h.feedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		c.Error(apperror.NewInternal("failed to render feed", err))
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}
