package http

import "github.com/gin-gonic/gin"

// Register attaches project and contact routes to the given router group.
// The rate-limit gate wraps only the contact write endpoint and runs before
// body parsing.
func (h *Handler) Register(rg *gin.RouterGroup, rateLimitGate gin.HandlerFunc) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/:slug", h.get)
	rg.POST("/contact", rateLimitGate, h.contact)
}
