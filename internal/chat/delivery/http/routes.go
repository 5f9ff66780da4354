package http

import (
	"travel-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every session route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions", mw.RateLimit())
	{
		sessions.POST("", h.CreateSession)
		sessions.DELETE("/:id", h.EndSession)
		sessions.POST("/:id/messages", h.SendMessage)
		sessions.GET("/:id/history", h.History)
		sessions.DELETE("/:id/history", h.ClearHistory)
	}
}
