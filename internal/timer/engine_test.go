package timer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(completions *[]Completion) *Engine {
	var seq int
	return NewEngine(
		func(c Completion) { *completions = append(*completions, c) },
		func() string { seq++; return fmt.Sprintf("uid-%d", seq) },
	)
}

func TestEngineInitialState(t *testing.T) {
	e := newTestEngine(&[]Completion{})

	s := e.Snapshot()
	assert.Equal(t, ModeWork, s.Mode)
	assert.Equal(t, WorkDurationSeconds, s.RemainingSeconds)
	assert.Equal(t, WorkDurationSeconds, s.TotalSeconds)
	assert.False(t, s.Running)
	assert.Equal(t, 0.0, s.Progress())
}

func TestEngineCountdownIsMonotonic(t *testing.T) {
	var completions []Completion
	e := newTestEngine(&completions)
	e.Start()

	prev := e.Snapshot().RemainingSeconds
	for i := 0; i < 2000; i++ {
		e.Tick()
		s := e.Snapshot()
		require.GreaterOrEqual(t, s.RemainingSeconds, 0)
		if s.Running {
			require.Less(t, s.RemainingSeconds, prev)
		}
		require.LessOrEqual(t, s.RemainingSeconds, s.TotalSeconds)
		prev = s.RemainingSeconds
	}
}

func TestEngineFullWorkSessionCompletesOnce(t *testing.T) {
	var completions []Completion
	e := newTestEngine(&completions)
	e.Start()

	for i := 0; i < WorkDurationSeconds; i++ {
		e.Tick()
	}

	require.Len(t, completions, 1)
	assert.Equal(t, ModeWork, completions[0].Mode)
	assert.Equal(t, 25, completions[0].DurationMinutes)
	assert.Equal(t, ModeBreak, completions[0].NextMode)
	assert.Equal(t, "uid-1", completions[0].SessionUID)

	// Auto-advance leaves the engine idle in break mode.
	s := e.Snapshot()
	assert.Equal(t, ModeBreak, s.Mode)
	assert.Equal(t, BreakDurationSeconds, s.RemainingSeconds)
	assert.Equal(t, BreakDurationSeconds, s.TotalSeconds)
	assert.False(t, s.Running)

	// Stray ticks after completion must not emit again.
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	assert.Len(t, completions, 1)
}

func TestEngineBreakAdvancesBackToWork(t *testing.T) {
	var completions []Completion
	e := newTestEngine(&completions)
	require.NoError(t, e.SelectMode(ModeBreak))
	e.Start()

	for i := 0; i < BreakDurationSeconds; i++ {
		e.Tick()
	}

	require.Len(t, completions, 1)
	assert.Equal(t, ModeBreak, completions[0].Mode)
	assert.Equal(t, 5, completions[0].DurationMinutes)

	s := e.Snapshot()
	assert.Equal(t, ModeWork, s.Mode)
	assert.Equal(t, WorkDurationSeconds, s.RemainingSeconds)
	assert.False(t, s.Running)
}

func TestEngineTickWhilePausedIsNoop(t *testing.T) {
	var completions []Completion
	e := newTestEngine(&completions)
	e.Start()
	e.Tick()
	require.Equal(t, WorkDurationSeconds-1, e.Snapshot().RemainingSeconds)

	e.Pause()
	// A stray scheduled callback after pause must not mutate state.
	e.Tick()
	s := e.Snapshot()
	assert.Equal(t, WorkDurationSeconds-1, s.RemainingSeconds)
	assert.False(t, s.Running)
	assert.Empty(t, completions)
}

func TestEnginePausePreservesRemaining(t *testing.T) {
	e := newTestEngine(&[]Completion{})
	e.Start()
	for i := 0; i < 100; i++ {
		e.Tick()
	}
	e.Pause()
	require.Equal(t, WorkDurationSeconds-100, e.Snapshot().RemainingSeconds)

	e.Start()
	e.Tick()
	assert.Equal(t, WorkDurationSeconds-101, e.Snapshot().RemainingSeconds)
}

func TestEngineReset(t *testing.T) {
	e := newTestEngine(&[]Completion{})
	e.Start()
	for i := 0; i < 42; i++ {
		e.Tick()
	}

	e.Reset()
	s := e.Snapshot()
	assert.Equal(t, s.TotalSeconds, s.RemainingSeconds)
	assert.False(t, s.Running)
	assert.Equal(t, ModeWork, s.Mode)
}

func TestEngineSelectModeCancelsRunningCountdown(t *testing.T) {
	e := newTestEngine(&[]Completion{})
	require.NoError(t, e.SelectMode(ModeBreak))
	e.Start()
	for i := 0; i < BreakDurationSeconds-100; i++ {
		e.Tick()
	}
	require.Equal(t, 100, e.Snapshot().RemainingSeconds)

	require.NoError(t, e.SelectMode(ModeWork))
	s := e.Snapshot()
	assert.Equal(t, ModeWork, s.Mode)
	assert.Equal(t, WorkDurationSeconds, s.RemainingSeconds)
	assert.Equal(t, WorkDurationSeconds, s.TotalSeconds)
	assert.False(t, s.Running)
}

func TestEngineSelectModeRegardlessOfPriorState(t *testing.T) {
	e := newTestEngine(&[]Completion{})
	e.Start()
	e.Tick()

	require.NoError(t, e.SelectMode(ModeBreak))
	s := e.Snapshot()
	assert.Equal(t, State{Mode: ModeBreak, RemainingSeconds: 300, TotalSeconds: 300, Running: false}, s)
}

func TestEngineSelectModeInvalid(t *testing.T) {
	e := newTestEngine(&[]Completion{})
	e.Start()
	e.Tick()
	before := e.Snapshot()

	err := e.SelectMode("long_break")
	require.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, before, e.Snapshot())
}

func TestEngineStartIsNoopWhileRunning(t *testing.T) {
	e := newTestEngine(&[]Completion{})
	e.Start()
	e.Tick()
	e.Start()
	assert.Equal(t, WorkDurationSeconds-1, e.Snapshot().RemainingSeconds)
	assert.True(t, e.Snapshot().Running)
}

func TestEngineProgress(t *testing.T) {
	e := newTestEngine(&[]Completion{})
	e.Start()
	for i := 0; i < WorkDurationSeconds/2; i++ {
		e.Tick()
	}
	assert.InDelta(t, 0.5, e.Snapshot().Progress(), 0.001)
}

func TestEngineCyclesIndefinitely(t *testing.T) {
	var completions []Completion
	e := newTestEngine(&completions)

	for cycle := 0; cycle < 3; cycle++ {
		e.Start()
		for i := 0; i < WorkDurationSeconds; i++ {
			e.Tick()
		}
		e.Start()
		for i := 0; i < BreakDurationSeconds; i++ {
			e.Tick()
		}
	}

	require.Len(t, completions, 6)
	for i, c := range completions {
		if i%2 == 0 {
			assert.Equal(t, ModeWork, c.Mode)
			assert.Equal(t, 25, c.DurationMinutes)
		} else {
			assert.Equal(t, ModeBreak, c.Mode)
			assert.Equal(t, 5, c.DurationMinutes)
		}
	}
	// Each session gets its own identity.
	uids := make(map[string]struct{})
	for _, c := range completions {
		uids[c.SessionUID] = struct{}{}
	}
	assert.Len(t, uids, 6)
}
