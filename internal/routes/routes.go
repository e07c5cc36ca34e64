package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvgen_backend/internal/handlers"
	"cvgen_backend/internal/middleware"
)

// Register wires the full route tree: public auth endpoints, the
// authenticated API and the admin group.
func Register(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	h.Auth.RegisterRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminMiddleware())

	h.User.RegisterRoutes(authed, admin)
	h.Profile.RegisterRoutes(authed)
	h.Catalog.RegisterRoutes(authed, admin)
	h.CV.RegisterRoutes(authed, admin)
}
