package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/auth"
	"github.com/campushire/talent-hub/pkg/logger"
)

const (
	GinContextKeyClaims = "claims"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", false
	}
	return tokenString, true
}

func AuthMiddleware(jwtSvc *auth.JWTService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header with bearer token is required"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyClaims, claims)

		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller identity when a token is present
// but lets anonymous requests through. Public detail pages use it to let
// owners and admins view unlisted profiles.
func OptionalAuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := jwtSvc.ValidateToken(tokenString); err == nil {
				c.Set(GinContextKeyClaims, claims)
			}
		}
		c.Next()
	}
}

// AdminMiddleware fails closed: no valid claims or no admin role means 403.
func AdminMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaimsFromGinContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !claims.IsAdmin() {
			log.Warn("Non-admin attempted an admin operation", zap.String("user_id", claims.UserID.String()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin capability required"})
			return
		}
		c.Next()
	}
}

func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors[0].Err
		status := apperror.ToHTTPStatus(err)

		if appErr, ok := err.(*apperror.AppError); ok {
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func GetClaimsFromGinContext(c *gin.Context) (*auth.CustomClaims, bool) {
	value, ok := c.Get(GinContextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.CustomClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
