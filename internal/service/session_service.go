package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "focusboard/internal/errors"
	"focusboard/internal/model"
	"focusboard/internal/repository"
	"focusboard/internal/timer"
)

type SessionService struct {
	repo *repository.SessionRepository
}

// CreateSessionInput is a manually logged session, for focus time spent away
// from the built-in timer.
type CreateSessionInput struct {
	Mode            string
	DurationMinutes int
	CompletedAt     *time.Time
}

func NewSessionService(repo *repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) List(ctx context.Context, limit int) ([]model.FocusSession, *apperrors.APIError) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sessions, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, apperrors.Internal("failed to list focus sessions")
	}
	return sessions, nil
}

func (s *SessionService) Create(ctx context.Context, input CreateSessionInput) (*model.FocusSession, *apperrors.APIError) {
	if input.Mode != timer.ModeWork && input.Mode != timer.ModeBreak {
		return nil, apperrors.BadRequest("invalid_mode", "mode must be one of work, break")
	}
	if input.DurationMinutes <= 0 {
		return nil, apperrors.BadRequest("invalid_duration", "durationMinutes must be positive")
	}

	completedAt := time.Now().UTC()
	if input.CompletedAt != nil {
		completedAt = input.CompletedAt.UTC()
	}

	session := model.FocusSession{
		SessionUID:      uuid.NewString(),
		Mode:            input.Mode,
		DurationMinutes: input.DurationMinutes,
		CompletedAt:     completedAt,
	}

	id, err := s.repo.Create(ctx, &session)
	if err != nil {
		return nil, apperrors.Internal("failed to create focus session")
	}
	session.ID = id
	return &session, nil
}
