package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focusboard/internal/chat"
	"focusboard/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	reply, apiErr := h.chatService.Send(c.Request.Context(), req.Messages)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": reply})
}
