package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("/:id", h.Detail)
		sessions.PUT("/:id/transcript", h.SetTranscript)
		sessions.POST("/:id/clean", h.Clean)
		sessions.POST("/:id/extract", h.Extract)
		sessions.POST("/:id/tasks", h.AddTask)
		sessions.PATCH("/:id/tasks/:taskId", h.UpdateTask)
		sessions.DELETE("/:id/tasks/:taskId", h.DeleteTask)
		sessions.POST("/:id/submit", h.Submit)
	}
}
