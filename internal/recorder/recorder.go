// Package recorder persists completed focus sessions. It sits between the
// timer engine and the store: the timer considers a session complete the
// moment it reaches zero, so a failed write is logged and dropped rather than
// surfaced back into the countdown loop.
package recorder

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"focusboard/internal/model"
	"focusboard/internal/timer"
)

type SessionStore interface {
	Create(ctx context.Context, session *model.FocusSession) (int64, error)
}

type Recorder struct {
	store SessionStore
	log   zerolog.Logger
	now   func() time.Time
}

func New(store SessionStore, log zerolog.Logger) *Recorder {
	return &Recorder{
		store: store,
		log:   log.With().Str("component", "recorder").Logger(),
		now:   time.Now,
	}
}

// Record implements timer.CompletionSink.
func (r *Recorder) Record(ctx context.Context, c timer.Completion) {
	session := model.FocusSession{
		SessionUID:      c.SessionUID,
		Mode:            c.Mode,
		DurationMinutes: c.DurationMinutes,
		CompletedAt:     r.now().UTC(),
	}

	id, err := r.store.Create(ctx, &session)
	if err != nil {
		r.log.Error().
			Err(err).
			Str("session_uid", c.SessionUID).
			Str("mode", c.Mode).
			Int("duration_minutes", c.DurationMinutes).
			Msg("failed to persist focus session")
		return
	}

	r.log.Info().
		Int64("id", id).
		Str("mode", c.Mode).
		Int("duration_minutes", c.DurationMinutes).
		Msg("focus session recorded")
}
