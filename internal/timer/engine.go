package timer

import "errors"

const (
	ModeWork  = "work"
	ModeBreak = "break"

	WorkDurationSeconds  = 25 * 60
	BreakDurationSeconds = 5 * 60
)

// ErrInvalidMode is returned by SelectMode for anything outside {work, break}.
var ErrInvalidMode = errors.New("mode must be one of work, break")

// State is a read-only snapshot of the engine.
type State struct {
	Mode             string `json:"mode"`
	RemainingSeconds int    `json:"remainingSeconds"`
	TotalSeconds     int    `json:"totalSeconds"`
	Running          bool   `json:"running"`
}

// Progress reports the elapsed fraction of the current session in [0, 1].
func (s State) Progress() float64 {
	if s.TotalSeconds == 0 {
		return 0
	}
	return float64(s.TotalSeconds-s.RemainingSeconds) / float64(s.TotalSeconds)
}

// Completion describes one finished session.
type Completion struct {
	SessionUID      string
	Mode            string
	DurationMinutes int
	NextMode        string
}

// Engine is the focus-timer state machine. It owns countdown and session-type
// state and invokes its completion callback exactly once per session that
// naturally reaches zero. The engine is not safe for concurrent use; a Runner
// serializes access on a single goroutine.
type Engine struct {
	mode       string
	remaining  int
	total      int
	running    bool
	sessionUID string

	onComplete func(Completion)
	newUID     func() string
}

func NewEngine(onComplete func(Completion), newUID func() string) *Engine {
	return &Engine{
		mode:       ModeWork,
		remaining:  WorkDurationSeconds,
		total:      WorkDurationSeconds,
		onComplete: onComplete,
		newUID:     newUID,
	}
}

// DurationForMode returns the fixed session length for a mode.
func DurationForMode(mode string) int {
	if mode == ModeBreak {
		return BreakDurationSeconds
	}
	return WorkDurationSeconds
}

// Start begins the countdown. It is a no-op while already running or when the
// countdown has reached zero.
func (e *Engine) Start() {
	if e.running || e.remaining == 0 {
		return
	}
	if e.sessionUID == "" {
		e.sessionUID = e.newUID()
	}
	e.running = true
}

// Pause stops the countdown, preserving the remaining time.
func (e *Engine) Pause() {
	e.running = false
}

// Reset returns the current mode to its full duration and stops the countdown.
func (e *Engine) Reset() {
	e.running = false
	e.sessionUID = ""
	e.remaining = e.total
}

// SelectMode switches to the given mode, cancelling any in-flight countdown
// and resetting the remaining time to the mode's full duration. State is
// unchanged when the mode is not recognised.
func (e *Engine) SelectMode(mode string) error {
	if mode != ModeWork && mode != ModeBreak {
		return ErrInvalidMode
	}
	e.mode = mode
	e.total = DurationForMode(mode)
	e.remaining = e.total
	e.running = false
	e.sessionUID = ""
	return nil
}

// Tick applies one one-second decrement. Ticks arriving while the engine is
// not running are discarded, which makes a stray scheduled callback after
// Pause harmless. When the decrement reaches zero the completion callback
// fires once and the engine auto-advances to the opposite mode, stopped.
func (e *Engine) Tick() {
	if !e.running || e.remaining == 0 {
		return
	}
	e.remaining--
	if e.remaining > 0 {
		return
	}

	done := Completion{
		SessionUID:      e.sessionUID,
		Mode:            e.mode,
		DurationMinutes: e.total / 60,
		NextMode:        otherMode(e.mode),
	}
	if e.onComplete != nil {
		e.onComplete(done)
	}

	e.mode = done.NextMode
	e.total = DurationForMode(e.mode)
	e.remaining = e.total
	e.running = false
	e.sessionUID = ""
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() State {
	return State{
		Mode:             e.mode,
		RemainingSeconds: e.remaining,
		TotalSeconds:     e.total,
		Running:          e.running,
	}
}

func otherMode(mode string) string {
	if mode == ModeWork {
		return ModeBreak
	}
	return ModeWork
}
