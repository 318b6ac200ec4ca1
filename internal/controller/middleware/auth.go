package middleware

import (
	"net/http"
	"strings"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	ContextUserIDKey = "auth_user_id"
	ContextRoleKey   = "auth_role"
)

// RequireAuth validates the bearer token and stashes the caller's identity
// in the request context.
func RequireAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}
		claims, err := authSvc.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Msg("RequireAuth: token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextRoleKey, claims.Role)
		ctx.Next()
	}
}

// RequireRoles allows the request through only when the authenticated caller
// has one of the given roles. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := RoleFrom(ctx)
		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient permissions"})
	}
}

// UserIDFrom returns the authenticated user's ID, or 0 when the request is
// unauthenticated.
func UserIDFrom(ctx *gin.Context) uint {
	if value, exists := ctx.Get(ContextUserIDKey); exists {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	return 0
}

func RoleFrom(ctx *gin.Context) string {
	if value, exists := ctx.Get(ContextRoleKey); exists {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}
