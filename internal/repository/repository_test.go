package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusboard/internal/db"
	"focusboard/internal/model"
	"focusboard/internal/repository"
	"focusboard/internal/timer"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")
	require.NoError(t, db.Migrate(database, migrationsDir))
	return database
}

func TestTaskRepositoryCreateAndPatch(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTaskRepository(openTestDB(t))

	now := time.Now().UTC()
	id, err := repo.Create(ctx, &model.Task{
		Title:     "read paper",
		Status:    model.TaskStatusTodo,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	status := model.TaskStatusDone
	task, err := repo.Patch(ctx, id, repository.TaskPatch{Status: &status}, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "read paper", task.Title)
	assert.Equal(t, model.TaskStatusDone, task.Status)
	assert.True(t, task.UpdatedAt.After(task.CreatedAt))

	_, err = repo.Patch(ctx, 999, repository.TaskPatch{Status: &status}, now)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepositoryCountByStatus(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTaskRepository(openTestDB(t))

	now := time.Now().UTC()
	for _, status := range []string{
		model.TaskStatusTodo,
		model.TaskStatusTodo,
		model.TaskStatusInProgress,
	} {
		_, err := repo.Create(ctx, &model.Task{
			Title:     "t",
			Status:    status,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
	}

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[model.TaskStatusTodo])
	assert.Equal(t, 1, counts[model.TaskStatusInProgress])
	// Absent statuses still appear with zero counts.
	assert.Equal(t, 0, counts[model.TaskStatusDone])
}

func TestTaskRepositoryProjectLink(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	projects := repository.NewProjectRepository(database)
	tasks := repository.NewTaskRepository(database)

	projectID, err := projects.Create(ctx, &model.Project{
		Name:      "thesis",
		Color:     "#ff8800",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	taskID, err := tasks.Create(ctx, &model.Task{
		Title:     "outline",
		Status:    model.TaskStatusTodo,
		ProjectID: &projectID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	task, err := tasks.Get(ctx, taskID)
	require.NoError(t, err)
	require.NotNil(t, task.ProjectID)
	assert.Equal(t, projectID, *task.ProjectID)
}

func TestLectureRepositoryPatchAttendance(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLectureRepository(openTestDB(t))

	now := time.Now().UTC()
	id, err := repo.Create(ctx, &model.Lecture{
		Course:    "Algorithms",
		Title:     "Dynamic programming",
		Date:      "2025-02-03",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	attended := true
	lecture, err := repo.Patch(ctx, id, repository.LecturePatch{Attended: &attended}, now)
	require.NoError(t, err)
	assert.True(t, lecture.Attended)
	assert.Equal(t, "Algorithms", lecture.Course)
	assert.Equal(t, "2025-02-03", lecture.Date)
}

func TestSessionRepositorySumByDay(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(openTestDB(t))

	now := time.Now().UTC()
	insert := func(mode string, minutes int, completedAt time.Time) {
		_, err := repo.Create(ctx, &model.FocusSession{
			SessionUID:      "uid",
			Mode:            mode,
			DurationMinutes: minutes,
			CompletedAt:     completedAt,
		})
		require.NoError(t, err)
	}

	insert(timer.ModeWork, 25, now)
	insert(timer.ModeWork, 25, now)
	insert(timer.ModeWork, 25, now.AddDate(0, 0, -2))
	// Breaks and out-of-window sessions are excluded.
	insert(timer.ModeBreak, 5, now)
	insert(timer.ModeWork, 25, now.AddDate(0, 0, -10))

	days, err := repo.SumByDay(ctx, now, 7, timer.ModeWork)
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, now.Format("2006-01-02"), days[6].Day)
	assert.Equal(t, 50, days[6].Minutes)
	assert.Equal(t, 25, days[4].Minutes)
	assert.Equal(t, 0, days[5].Minutes)
}

func TestSessionRepositoryListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(openTestDB(t))

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &model.FocusSession{
			SessionUID:      "uid",
			Mode:            timer.ModeWork,
			DurationMinutes: 25,
			CompletedAt:     now.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	sessions, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].CompletedAt.After(sessions[1].CompletedAt))
}
