package service

import (
	"context"
	"strings"
	"time"

	apperrors "focusboard/internal/errors"
	"focusboard/internal/model"
	"focusboard/internal/repository"
)

type TaskService struct {
	repo *repository.TaskRepository
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	ProjectID   *int64
}

type PatchTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	ProjectID   *int64
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, *apperrors.APIError) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list tasks")
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*model.Task, *apperrors.APIError) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.BadRequest("invalid_title", "title is required")
	}

	status := input.Status
	if status == "" {
		status = model.TaskStatusTodo
	}
	if !model.IsValidTaskStatus(status) {
		return nil, apperrors.BadRequest("invalid_status", "status must be one of todo, in_progress, done")
	}

	now := time.Now().UTC()
	task := model.Task{
		Title:       title,
		Description: input.Description,
		Status:      status,
		ProjectID:   input.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, &task)
	if err != nil {
		return nil, apperrors.Internal("failed to create task")
	}
	task.ID = id
	return &task, nil
}

func (s *TaskService) Patch(ctx context.Context, id int64, input PatchTaskInput) (*model.Task, *apperrors.APIError) {
	if input.Status != nil && !model.IsValidTaskStatus(*input.Status) {
		return nil, apperrors.BadRequest("invalid_status", "status must be one of todo, in_progress, done")
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, apperrors.BadRequest("invalid_title", "title must not be empty")
	}

	task, err := s.repo.Patch(ctx, id, repository.TaskPatch{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		ProjectID:   input.ProjectID,
	}, time.Now())
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("task_not_found", "task not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to update task")
	}
	return task, nil
}
