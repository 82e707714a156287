package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margays/config"
	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/util"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware requires a bearer token: 401 when the token is missing,
// 403 when it does not verify.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authentication token"})
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			log.Warn().Err(err).Msg("Rejected invalid bearer token")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Invalid authentication token"})
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Admins pass any gate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authentication token"})
			return
		}

		hasRole := claims.Role == "admin"
		for _, role := range roles {
			if claims.Role == role {
				hasRole = true
				break
			}
		}
		if !hasRole {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
