package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focusboard/internal/model"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskPatch carries a merge-patch update: nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	ProjectID   *int64
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, title, description, status, project_id, created_at, updated_at
		 FROM tasks
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (int64, error) {
	var projectID interface{}
	if task.ProjectID != nil {
		projectID = *task.ProjectID
	}

	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO tasks (title, description, status, project_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		task.Title,
		task.Description,
		task.Status,
		projectID,
		formatTime(task.CreatedAt),
		formatTime(task.UpdatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*model.Task, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, title, description, status, project_id, created_at, updated_at
		 FROM tasks WHERE id = ?`,
		id,
	)
	return scanTask(row)
}

// Patch overwrites only the supplied fields and bumps updated_at.
func (r *TaskRepository) Patch(ctx context.Context, id int64, patch TaskPatch, now time.Time) (*model.Task, error) {
	task, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.ProjectID != nil {
		task.ProjectID = patch.ProjectID
	}
	task.UpdatedAt = now.UTC()

	var projectID interface{}
	if task.ProjectID != nil {
		projectID = *task.ProjectID
	}

	_, err = r.db.ExecContext(
		ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, status = ?, project_id = ?, updated_at = ?
		 WHERE id = ?`,
		task.Title,
		task.Description,
		task.Status,
		projectID,
		formatTime(task.UpdatedAt),
		task.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("patch task: %w", err)
	}
	return task, nil
}

// CountByStatus powers the task slice of the analytics view.
func (r *TaskRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT status, COUNT(1) FROM tasks GROUP BY status`,
	)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{
		model.TaskStatusTodo:       0,
		model.TaskStatusInProgress: 0,
		model.TaskStatusDone:       0,
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan task count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task counts: %w", err)
	}
	return counts, nil
}

func scanTask(s scanner) (*model.Task, error) {
	task := model.Task{}
	var projectID sql.NullInt64
	var createdAt, updatedAt string
	err := s.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&projectID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}

	if projectID.Valid {
		value := projectID.Int64
		task.ProjectID = &value
	}

	task.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse task created_at: %w", err)
	}
	task.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse task updated_at: %w", err)
	}
	return &task, nil
}
