package service

import (
	"context"
	"time"

	apperrors "focusboard/internal/errors"
	"focusboard/internal/model"
	"focusboard/internal/repository"
	"focusboard/internal/timer"
)

const focusWindowDays = 7

type AnalyticsService struct {
	taskRepo    *repository.TaskRepository
	sessionRepo *repository.SessionRepository
}

func NewAnalyticsService(
	taskRepo *repository.TaskRepository,
	sessionRepo *repository.SessionRepository,
) *AnalyticsService {
	return &AnalyticsService{taskRepo: taskRepo, sessionRepo: sessionRepo}
}

// Overview returns per-status task counts and focus minutes for the last
// seven days, oldest day first.
func (s *AnalyticsService) Overview(ctx context.Context) (*model.Analytics, *apperrors.APIError) {
	counts, err := s.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to count tasks")
	}

	byDay, err := s.sessionRepo.SumByDay(ctx, time.Now(), focusWindowDays, timer.ModeWork)
	if err != nil {
		return nil, apperrors.Internal("failed to aggregate focus sessions")
	}

	return &model.Analytics{
		TaskCounts: counts,
		FocusByDay: byDay,
	}, nil
}
