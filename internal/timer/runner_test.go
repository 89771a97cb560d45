package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu   sync.Mutex
	seen []Completion
}

func (s *captureSink) Record(_ context.Context, c Completion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, c)
}

func (s *captureSink) completions() []Completion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Completion, len(s.seen))
	copy(out, s.seen)
	return out
}

func TestRunnerCountsDownAndRecordsCompletion(t *testing.T) {
	sink := &captureSink{}
	r := NewRunner(sink, WithTickInterval(time.Millisecond))
	defer r.Close()

	state, err := r.SelectMode(ModeBreak)
	require.NoError(t, err)
	require.Equal(t, BreakDurationSeconds, state.RemainingSeconds)

	state, err = r.Start()
	require.NoError(t, err)
	require.True(t, state.Running)

	require.Eventually(t, func() bool {
		return len(sink.completions()) == 1
	}, 5*time.Second, 5*time.Millisecond)

	done := sink.completions()[0]
	assert.Equal(t, ModeBreak, done.Mode)
	assert.Equal(t, 5, done.DurationMinutes)
	assert.NotEmpty(t, done.SessionUID)

	state, err = r.State()
	require.NoError(t, err)
	assert.Equal(t, ModeWork, state.Mode)
	assert.Equal(t, WorkDurationSeconds, state.RemainingSeconds)
	assert.False(t, state.Running)

	notifs := r.DrainNotifications()
	require.Len(t, notifs, 1)
	assert.Equal(t, ModeBreak, notifs[0].Mode)
	assert.Equal(t, ModeWork, notifs[0].NextMode)
	assert.Empty(t, r.DrainNotifications())
}

func TestRunnerPauseStopsTicking(t *testing.T) {
	r := NewRunner(nil, WithTickInterval(time.Millisecond))
	defer r.Close()

	_, err := r.Start()
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state, stateErr := r.State()
		return stateErr == nil && state.RemainingSeconds < WorkDurationSeconds
	}, 5*time.Second, time.Millisecond)

	state, err := r.Pause()
	require.NoError(t, err)
	require.False(t, state.Running)
	frozen := state.RemainingSeconds

	// No tick after cancellation may mutate the countdown.
	time.Sleep(20 * time.Millisecond)
	state, err = r.State()
	require.NoError(t, err)
	assert.Equal(t, frozen, state.RemainingSeconds)
}

func TestRunnerSelectModeWhileRunning(t *testing.T) {
	r := NewRunner(nil, WithTickInterval(time.Millisecond))
	defer r.Close()

	_, err := r.SelectMode(ModeBreak)
	require.NoError(t, err)
	_, err = r.Start()
	require.NoError(t, err)

	state, err := r.SelectMode(ModeWork)
	require.NoError(t, err)
	assert.Equal(t, ModeWork, state.Mode)
	assert.Equal(t, WorkDurationSeconds, state.RemainingSeconds)
	assert.False(t, state.Running)
}

func TestRunnerRejectsInvalidMode(t *testing.T) {
	r := NewRunner(nil, WithTickInterval(time.Millisecond))
	defer r.Close()

	_, err := r.SelectMode("long_break")
	require.ErrorIs(t, err, ErrInvalidMode)

	state, err := r.State()
	require.NoError(t, err)
	assert.Equal(t, ModeWork, state.Mode)
}

func TestRunnerReset(t *testing.T) {
	r := NewRunner(nil, WithTickInterval(time.Millisecond))
	defer r.Close()

	_, err := r.Start()
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state, stateErr := r.State()
		return stateErr == nil && state.RemainingSeconds < WorkDurationSeconds
	}, 5*time.Second, time.Millisecond)

	state, err := r.Reset()
	require.NoError(t, err)
	assert.Equal(t, WorkDurationSeconds, state.RemainingSeconds)
	assert.False(t, state.Running)
}

func TestRunnerCloseUnblocksCommands(t *testing.T) {
	r := NewRunner(nil)
	r.Close()

	_, err := r.State()
	assert.ErrorIs(t, err, context.Canceled)
}
