package service

import (
	"context"
	"strings"
	"time"

	apperrors "focusboard/internal/errors"
	"focusboard/internal/model"
	"focusboard/internal/repository"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

type CreateProjectInput struct {
	Name  string
	Color string
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, *apperrors.APIError) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list projects")
	}
	return projects, nil
}

func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*model.Project, *apperrors.APIError) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.BadRequest("invalid_name", "name is required")
	}

	project := model.Project{
		Name:      name,
		Color:     input.Color,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, &project)
	if err != nil {
		return nil, apperrors.Internal("failed to create project")
	}
	project.ID = id
	return &project, nil
}
