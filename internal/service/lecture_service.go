package service

import (
	"context"
	"strings"
	"time"

	apperrors "focusboard/internal/errors"
	"focusboard/internal/model"
	"focusboard/internal/repository"
)

type LectureService struct {
	repo *repository.LectureRepository
}

type CreateLectureInput struct {
	Course string
	Title  string
	Date   string
}

type PatchLectureInput struct {
	Course   *string
	Title    *string
	Date     *string
	Attended *bool
}

func NewLectureService(repo *repository.LectureRepository) *LectureService {
	return &LectureService{repo: repo}
}

func (s *LectureService) List(ctx context.Context) ([]model.Lecture, *apperrors.APIError) {
	lectures, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list lectures")
	}
	return lectures, nil
}

func (s *LectureService) Create(ctx context.Context, input CreateLectureInput) (*model.Lecture, *apperrors.APIError) {
	course := strings.TrimSpace(input.Course)
	if course == "" {
		return nil, apperrors.BadRequest("invalid_course", "course is required")
	}
	if apiErr := validateLectureDate(input.Date); apiErr != nil {
		return nil, apiErr
	}

	now := time.Now().UTC()
	lecture := model.Lecture{
		Course:    course,
		Title:     strings.TrimSpace(input.Title),
		Date:      input.Date,
		Attended:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, &lecture)
	if err != nil {
		return nil, apperrors.Internal("failed to create lecture")
	}
	lecture.ID = id
	return &lecture, nil
}

func (s *LectureService) Patch(ctx context.Context, id int64, input PatchLectureInput) (*model.Lecture, *apperrors.APIError) {
	if input.Course != nil && strings.TrimSpace(*input.Course) == "" {
		return nil, apperrors.BadRequest("invalid_course", "course must not be empty")
	}
	if input.Date != nil {
		if apiErr := validateLectureDate(*input.Date); apiErr != nil {
			return nil, apiErr
		}
	}

	lecture, err := s.repo.Patch(ctx, id, repository.LecturePatch{
		Course:   input.Course,
		Title:    input.Title,
		Date:     input.Date,
		Attended: input.Attended,
	}, time.Now())
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("lecture_not_found", "lecture not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to update lecture")
	}
	return lecture, nil
}

func validateLectureDate(date string) *apperrors.APIError {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}
	return nil
}
