package test

import (
	"travel-assistant/internal/chat"
	pkgLog "travel-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleTestMessage(c *gin.Context)
	HandleAnalyze(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes mounts the debug endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/message", h.HandleTestMessage)
	rg.POST("/analyze", h.HandleAnalyze)
	rg.POST("/reset", h.HandleResetSession)
	rg.GET("/health", h.HandleHealthCheck)
}
