package handlers

import (
	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers all routes for health checks
func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.Root)
	router.GET("/health", h.Check)
}

func (h *HealthHandler) Root(c *gin.Context) {
	Message(c, "ArenaMeta API is running")
}

func (h *HealthHandler) Check(c *gin.Context) {
	Ok(c, HealthResponse{
		Status: "healthy",
	})
}
