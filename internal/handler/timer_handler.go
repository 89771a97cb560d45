package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "focusboard/internal/errors"
	"focusboard/internal/timer"
)

type TimerHandler struct {
	runner *timer.Runner
}

type selectModeRequest struct {
	Mode string `json:"mode"`
}

func NewTimerHandler(runner *timer.Runner) *TimerHandler {
	return &TimerHandler{runner: runner}
}

func (h *TimerHandler) State(c *gin.Context) {
	state, err := h.runner.State()
	if err != nil {
		writeError(c, apperrors.Internal("timer unavailable"))
		return
	}
	writeState(c, state)
}

func (h *TimerHandler) Start(c *gin.Context) {
	state, err := h.runner.Start()
	if err != nil {
		writeError(c, apperrors.Internal("timer unavailable"))
		return
	}
	writeState(c, state)
}

func (h *TimerHandler) Pause(c *gin.Context) {
	state, err := h.runner.Pause()
	if err != nil {
		writeError(c, apperrors.Internal("timer unavailable"))
		return
	}
	writeState(c, state)
}

func (h *TimerHandler) Reset(c *gin.Context) {
	state, err := h.runner.Reset()
	if err != nil {
		writeError(c, apperrors.Internal("timer unavailable"))
		return
	}
	writeState(c, state)
}

func (h *TimerHandler) SelectMode(c *gin.Context) {
	var req selectModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	state, err := h.runner.SelectMode(req.Mode)
	if err == timer.ErrInvalidMode {
		writeError(c, apperrors.BadRequest("invalid_mode", err.Error()))
		return
	}
	if err != nil {
		writeError(c, apperrors.Internal("timer unavailable"))
		return
	}
	writeState(c, state)
}

// Notifications drains pending completion notifications for the client to
// display; each notification is delivered once.
func (h *TimerHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.runner.DrainNotifications()})
}

func writeState(c *gin.Context, state timer.State) {
	c.JSON(http.StatusOK, gin.H{
		"state":    state,
		"progress": state.Progress(),
	})
}
