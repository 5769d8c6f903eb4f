package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	profileUC "github.com/campushire/talent-hub/internal/application/usecase/profile"
	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase      *profileUC.ProfileUseCase
	uploadAvatarUseCase *profileUC.UploadAvatarUseCase
	logger              logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, avatarUC *profileUC.UploadAvatarUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:      uc,
		uploadAvatarUseCase: avatarUC,
		logger:              log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}

	input := profileUC.GetProfileInput{OwnerID: userID}
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		OwnerID:        userID,
		FullName:       req.FullName,
		Headline:       req.Headline,
		Institution:    req.Institution,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
		Bio:            req.Bio,
		Location:       req.Location,
		Links:          talent.Links(req.Links),
	}

	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) SetVisibility(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}

	var req SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid visibility payload", err))
		return
	}

	input := profileUC.SetVisibilityInput{OwnerID: userID, Visible: *req.Visible}
	if err := h.profileUseCase.ExecuteSetVisibility(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_visible": *req.Visible})
}

func (h *ProfileHandler) GetReviewState(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}

	input := profileUC.GetReviewStateInput{OwnerID: userID}
	output, err := h.profileUseCase.ExecuteGetReviewState(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            output.Status,
		"review_note":       output.ReviewNote,
		"requested_changes": output.RequestedChanges,
		"reviewed_at":       output.ReviewedAt,
	})
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewForbidden("user identity not found in context"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.Error(apperror.NewInvalidInput("multipart field 'avatar' is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot open uploaded file", err))
		return
	}
	defer file.Close()

	input := profileUC.UploadAvatarInput{OwnerID: userID, File: file}
	output, err := h.uploadAvatarUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": output.AvatarURL})
}
