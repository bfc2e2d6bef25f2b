package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /admin under api. auth guards account routes;
// limit throttles the unauthenticated credential endpoints.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth, limit gin.HandlerFunc) {
	g := api.Group("/admin")

	g.POST("/login", limit, h.Login)
	g.POST("/forgot-password", limit, h.ForgotPassword)
	g.POST("/reset-password", limit, h.ResetPassword)

	protected := g.Group("", auth)
	protected.GET("/verify", h.Verify)
	protected.PUT("/update", h.UpdateProfile)
	protected.PUT("/change-password", h.ChangePassword)
}
