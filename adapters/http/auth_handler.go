package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authUC "github.com/campushire/talent-hub/internal/application/usecase/auth"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type AuthHandler struct {
	registerUseCase *authUC.RegisterUseCase
	loginUseCase    *authUC.LoginUseCase
	logger          logger.Logger
}

func NewAuthHandler(registerUC *authUC.RegisterUseCase, loginUC *authUC.LoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		logger:          log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid registration data", err))
		return
	}

	input := authUC.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id":      output.UserID,
		"access_token": output.AccessToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	input := authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {

		if errors.Is(err, authUC.ErrInvalidCredentials) || errors.Is(err, apperror.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password is incorrect"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
		"role":         output.Role,
	})
}
