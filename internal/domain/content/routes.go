package content

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts GET (public) and POST/PUT/DELETE (guarded by auth) under path.
func (h *Handler[T, C, U]) RegisterRoutes(api *gin.RouterGroup, path string, auth gin.HandlerFunc) {
	g := api.Group(path)
	g.GET("", h.List)
	g.POST("", auth, h.Create)
	g.PUT("/:id", auth, h.Update)
	g.DELETE("/:id", auth, h.Delete)
}

func (h *SiteHandler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	api.GET("/site-content", h.Get)
	api.PUT("/site-content", auth, h.Update)
}
