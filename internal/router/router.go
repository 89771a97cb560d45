package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focusboard/internal/handler"
	"focusboard/internal/middleware"
)

type Handlers struct {
	Task      *handler.TaskHandler
	Lecture   *handler.LectureHandler
	Project   *handler.ProjectHandler
	Session   *handler.SessionHandler
	Analytics *handler.AnalyticsHandler
	Timer     *handler.TimerHandler
	Chat      *handler.ChatHandler
}

func New(h Handlers, corsOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	tasks := api.Group("/tasks")
	tasks.GET("", h.Task.List)
	tasks.POST("", h.Task.Create)
	tasks.PATCH("/:id", h.Task.Patch)

	lectures := api.Group("/lectures")
	lectures.GET("", h.Lecture.List)
	lectures.POST("", h.Lecture.Create)
	lectures.PATCH("/:id", h.Lecture.Patch)

	projects := api.Group("/projects")
	projects.GET("", h.Project.List)
	projects.POST("", h.Project.Create)

	sessions := api.Group("/focus-sessions")
	sessions.GET("", h.Session.List)
	sessions.POST("", h.Session.Create)

	api.GET("/analytics", h.Analytics.Overview)

	timerGroup := api.Group("/timer")
	timerGroup.GET("/state", h.Timer.State)
	timerGroup.POST("/start", h.Timer.Start)
	timerGroup.POST("/pause", h.Timer.Pause)
	timerGroup.POST("/reset", h.Timer.Reset)
	timerGroup.POST("/mode", h.Timer.SelectMode)
	timerGroup.GET("/notifications", h.Timer.Notifications)

	api.POST("/chat", h.Chat.Send)

	return engine
}
