package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focusboard/internal/model"
)

type LectureRepository struct {
	db *sql.DB
}

func NewLectureRepository(db *sql.DB) *LectureRepository {
	return &LectureRepository{db: db}
}

// LecturePatch carries a merge-patch update: nil fields are left untouched.
type LecturePatch struct {
	Course   *string
	Title    *string
	Date     *string
	Attended *bool
}

func (r *LectureRepository) List(ctx context.Context) ([]model.Lecture, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, course, title, date, attended, created_at, updated_at
		 FROM lectures
		 ORDER BY date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list lectures: %w", err)
	}
	defer rows.Close()

	lectures := make([]model.Lecture, 0)
	for rows.Next() {
		lecture, scanErr := scanLecture(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		lectures = append(lectures, *lecture)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lectures: %w", err)
	}
	return lectures, nil
}

func (r *LectureRepository) Create(ctx context.Context, lecture *model.Lecture) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO lectures (course, title, date, attended, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		lecture.Course,
		lecture.Title,
		lecture.Date,
		lecture.Attended,
		formatTime(lecture.CreatedAt),
		formatTime(lecture.UpdatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create lecture: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("lecture insert id: %w", err)
	}
	return id, nil
}

func (r *LectureRepository) Get(ctx context.Context, id int64) (*model.Lecture, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, course, title, date, attended, created_at, updated_at
		 FROM lectures WHERE id = ?`,
		id,
	)
	return scanLecture(row)
}

// Patch overwrites only the supplied fields and bumps updated_at.
func (r *LectureRepository) Patch(ctx context.Context, id int64, patch LecturePatch, now time.Time) (*model.Lecture, error) {
	lecture, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Course != nil {
		lecture.Course = *patch.Course
	}
	if patch.Title != nil {
		lecture.Title = *patch.Title
	}
	if patch.Date != nil {
		lecture.Date = *patch.Date
	}
	if patch.Attended != nil {
		lecture.Attended = *patch.Attended
	}
	lecture.UpdatedAt = now.UTC()

	_, err = r.db.ExecContext(
		ctx,
		`UPDATE lectures
		 SET course = ?, title = ?, date = ?, attended = ?, updated_at = ?
		 WHERE id = ?`,
		lecture.Course,
		lecture.Title,
		lecture.Date,
		lecture.Attended,
		formatTime(lecture.UpdatedAt),
		lecture.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("patch lecture: %w", err)
	}
	return lecture, nil
}

func scanLecture(s scanner) (*model.Lecture, error) {
	lecture := model.Lecture{}
	var createdAt, updatedAt string
	err := s.Scan(
		&lecture.ID,
		&lecture.Course,
		&lecture.Title,
		&lecture.Date,
		&lecture.Attended,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan lecture: %w", err)
	}

	lecture.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse lecture created_at: %w", err)
	}
	lecture.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse lecture updated_at: %w", err)
	}
	return &lecture, nil
}
