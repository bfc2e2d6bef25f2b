package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crewsite/internal/pkg/jwt"
	"crewsite/internal/pkg/response"
)

const adminUsernameKey = "admin_username"

// AdminJWTAuth requires "Authorization: Bearer <token>" with a valid admin
// access token and stores the token subject for handlers.
func AdminJWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Header("WWW-Authenticate", "Bearer")
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			c.Header("WWW-Authenticate", "Bearer")
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := jwtService.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			msg := "Could not validate credentials"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expired"
			}
			c.Header("WWW-Authenticate", "Bearer")
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", msg)
			return
		}

		c.Set(adminUsernameKey, claims.Subject)
		c.Next()
	}
}

// AdminUsername returns the subject set by AdminJWTAuth.
func AdminUsername(c *gin.Context) string {
	return c.GetString(adminUsernameKey)
}
