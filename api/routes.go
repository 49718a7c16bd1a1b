package api

import (
	"github.com/gin-gonic/gin"

	"coldreach/internal/api"
)

// RegisterRoutes sets up the generation endpoints.
func RegisterRoutes(router *gin.Engine, h *api.APIHandler) {
	router.POST("/prompt", h.GeneratePrompt)
	router.GET("/health", h.Health)
}
