package middleware

import (
	"net/http"
	"strings"

	"clubin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxSubjectID = "subjectID"
	CtxEmail     = "email"
	CtxRole      = "role"
	CtxClubID    = "clubID"
)

// AuthMiddleware creates a Gin middleware for bearer-token authentication.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", err.Error()))
			return
		}

		c.Set(CtxSubjectID, claims.SubjectID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxClubID, claims.ClubID)

		c.Next()
	}
}

// RequireRole creates a Gin middleware that rejects requests whose token
// role does not match. AuthMiddleware must run first.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenRole, exists := c.Get(CtxRole)
		if !exists {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Role not found in token claims. Ensure AuthMiddleware runs first.", ""))
			return
		}

		roleStr, ok := tokenRole.(string)
		if !ok || !strings.EqualFold(roleStr, role) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You do not have permission to access this resource. Required role: "+role, ""))
			return
		}

		c.Next()
	}
}

// SubjectID returns the authenticated subject's ID from the context.
func SubjectID(c *gin.Context) int64 {
	id, _ := c.Get(CtxSubjectID)
	subjectID, _ := id.(int64)
	return subjectID
}

// ClubID returns the authenticated owner's club ID from the context.
func ClubID(c *gin.Context) int64 {
	id, _ := c.Get(CtxClubID)
	clubID, _ := id.(int64)
	return clubID
}
