package service

import (
	"context"
	"strings"

	"focusboard/internal/chat"
	apperrors "focusboard/internal/errors"
)

type ChatService struct {
	client *chat.Client
}

func NewChatService(client *chat.Client) *ChatService {
	return &ChatService{client: client}
}

// Send forwards the conversation upstream. Transport and upstream failures
// surface as 502; the dashboard has no retry story.
func (s *ChatService) Send(ctx context.Context, messages []chat.Message) (*chat.Message, *apperrors.APIError) {
	if len(messages) == 0 {
		return nil, apperrors.BadRequest("invalid_messages", "at least one message is required")
	}
	for _, m := range messages {
		if m.Role != "system" && m.Role != "user" && m.Role != "assistant" {
			return nil, apperrors.BadRequest("invalid_role", "role must be one of system, user, assistant")
		}
		if strings.TrimSpace(m.Content) == "" {
			return nil, apperrors.BadRequest("invalid_content", "message content must not be empty")
		}
	}

	reply, err := s.client.Complete(ctx, messages)
	if err != nil {
		return nil, apperrors.BadGateway("ai_unavailable", "AI endpoint request failed")
	}
	return reply, nil
}
