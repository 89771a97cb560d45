package recorder

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusboard/internal/model"
	"focusboard/internal/timer"
)

type fakeStore struct {
	sessions []model.FocusSession
	err      error
}

func (s *fakeStore) Create(_ context.Context, session *model.FocusSession) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.sessions = append(s.sessions, *session)
	return int64(len(s.sessions)), nil
}

func TestRecorderPersistsCompletion(t *testing.T) {
	store := &fakeStore{}
	r := New(store, zerolog.Nop())

	r.Record(context.Background(), timer.Completion{
		SessionUID:      "uid-1",
		Mode:            timer.ModeWork,
		DurationMinutes: 25,
	})

	require.Len(t, store.sessions, 1)
	assert.Equal(t, "uid-1", store.sessions[0].SessionUID)
	assert.Equal(t, timer.ModeWork, store.sessions[0].Mode)
	assert.Equal(t, 25, store.sessions[0].DurationMinutes)
	assert.False(t, store.sessions[0].CompletedAt.IsZero())
}

func TestRecorderSwallowsStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	r := New(store, zerolog.Nop())

	// Must not panic or propagate; the session is still considered complete.
	r.Record(context.Background(), timer.Completion{
		SessionUID:      "uid-2",
		Mode:            timer.ModeBreak,
		DurationMinutes: 5,
	})

	assert.Empty(t, store.sessions)
}
