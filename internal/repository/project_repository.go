package repository

import (
	"context"
	"database/sql"
	"fmt"

	"focusboard/internal/model"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, name, color, created_at FROM projects ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		project := model.Project{}
		var createdAt string
		if err := rows.Scan(&project.ID, &project.Name, &project.Color, &createdAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		project.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse project created_at: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO projects (name, color, created_at) VALUES (?, ?, ?)`,
		project.Name,
		project.Color,
		formatTime(project.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project insert id: %w", err)
	}
	return id, nil
}
