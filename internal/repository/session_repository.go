package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focusboard/internal/model"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) List(ctx context.Context, limit int) ([]model.FocusSession, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, session_uid, mode, duration_minutes, completed_at
		 FROM focus_sessions
		 ORDER BY completed_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list focus sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]model.FocusSession, 0, limit)
	for rows.Next() {
		session, scanErr := scanFocusSession(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate focus sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *model.FocusSession) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO focus_sessions (session_uid, mode, duration_minutes, completed_at)
		 VALUES (?, ?, ?, ?)`,
		session.SessionUID,
		session.Mode,
		session.DurationMinutes,
		formatTime(session.CompletedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create focus session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("focus session insert id: %w", err)
	}
	return id, nil
}

// SumByDay aggregates focus minutes per calendar day over the days leading up
// to and including now. Days without sessions appear with zero minutes.
func (r *SessionRepository) SumByDay(ctx context.Context, now time.Time, days int, mode string) ([]model.FocusDay, error) {
	start := now.UTC().AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT substr(completed_at, 1, 10) AS day, SUM(duration_minutes)
		 FROM focus_sessions
		 WHERE completed_at >= ? AND mode = ?
		 GROUP BY day`,
		formatTime(start),
		mode,
	)
	if err != nil {
		return nil, fmt.Errorf("sum focus sessions: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int, days)
	for rows.Next() {
		var day string
		var minutes int
		if err := rows.Scan(&day, &minutes); err != nil {
			return nil, fmt.Errorf("scan focus sum: %w", err)
		}
		totals[day] = minutes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate focus sums: %w", err)
	}

	out := make([]model.FocusDay, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, model.FocusDay{Day: day, Minutes: totals[day]})
	}
	return out, nil
}

func scanFocusSession(s scanner) (*model.FocusSession, error) {
	session := model.FocusSession{}
	var completedAt string
	err := s.Scan(
		&session.ID,
		&session.SessionUID,
		&session.Mode,
		&session.DurationMinutes,
		&completedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan focus session: %w", err)
	}

	session.CompletedAt, err = parseTime(completedAt)
	if err != nil {
		return nil, fmt.Errorf("parse focus session completed_at: %w", err)
	}
	return &session, nil
}
