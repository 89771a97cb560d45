package timer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CompletionSink receives finished sessions. Implementations must not fail
// into the timer: whatever happens downstream, the session is complete.
type CompletionSink interface {
	Record(ctx context.Context, c Completion)
}

// Notification is the non-blocking user-facing event emitted alongside each
// completion. The presentation layer polls for these instead of the timer
// blocking on an acknowledgment.
type Notification struct {
	Message  string    `json:"message"`
	Mode     string    `json:"mode"`
	NextMode string    `json:"nextMode"`
	At       time.Time `json:"at"`
}

type command struct {
	apply func() error
	reply chan result
}

type result struct {
	state State
	err   error
}

// Runner owns one Engine on a dedicated goroutine. All commands and ticks are
// serialized through the loop, so there is never more than one live tick
// source and no tick can race a pause or mode switch: once a command stops
// the ticker, any tick already drawn from the old ticker channel is discarded
// by the engine's running check.
type Runner struct {
	engine   *Engine
	interval time.Duration
	sink     CompletionSink

	cmds   chan command
	notifs chan Notification
	quit   chan struct{}
	done   chan struct{}
}

type RunnerOption func(*Runner)

// WithTickInterval overrides the one-second tick period. Used by tests.
func WithTickInterval(d time.Duration) RunnerOption {
	return func(r *Runner) { r.interval = d }
}

func NewRunner(sink CompletionSink, opts ...RunnerOption) *Runner {
	r := &Runner{
		interval: time.Second,
		sink:     sink,
		cmds:     make(chan command),
		notifs:   make(chan Notification, 16),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.engine = NewEngine(r.onComplete, uuid.NewString)
	go r.run()
	return r
}

func (r *Runner) run() {
	defer close(r.done)

	var ticker *time.Ticker
	var tick <-chan time.Time

	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
	}
	// Reconcile the tick source with the engine: exactly one ticker while
	// running, none otherwise. Cancellation always precedes a new schedule.
	sync := func() {
		if r.engine.Snapshot().Running {
			if ticker == nil {
				ticker = time.NewTicker(r.interval)
				tick = ticker.C
			}
			return
		}
		stop()
	}

	for {
		select {
		case cmd := <-r.cmds:
			err := cmd.apply()
			sync()
			cmd.reply <- result{state: r.engine.Snapshot(), err: err}
		case <-tick:
			r.engine.Tick()
			sync()
		case <-r.quit:
			stop()
			return
		}
	}
}

func (r *Runner) onComplete(c Completion) {
	if r.sink != nil {
		r.sink.Record(context.Background(), c)
	}

	n := Notification{
		Message:  completionMessage(c),
		Mode:     c.Mode,
		NextMode: c.NextMode,
		At:       time.Now().UTC(),
	}
	select {
	case r.notifs <- n:
	default:
		// Nobody is draining; losing a notification beats stalling the loop.
	}
}

func completionMessage(c Completion) string {
	if c.Mode == ModeWork {
		return "Focus session complete. Time for a break."
	}
	return "Break over. Back to work."
}

func (r *Runner) do(apply func() error) (State, error) {
	cmd := command{apply: apply, reply: make(chan result, 1)}
	select {
	case r.cmds <- cmd:
	case <-r.done:
		return State{}, context.Canceled
	}
	res := <-cmd.reply
	return res.state, res.err
}

func (r *Runner) Start() (State, error) {
	return r.do(func() error { r.engine.Start(); return nil })
}

func (r *Runner) Pause() (State, error) {
	return r.do(func() error { r.engine.Pause(); return nil })
}

func (r *Runner) Reset() (State, error) {
	return r.do(func() error { r.engine.Reset(); return nil })
}

func (r *Runner) SelectMode(mode string) (State, error) {
	return r.do(func() error { return r.engine.SelectMode(mode) })
}

// State returns a snapshot of the engine.
func (r *Runner) State() (State, error) {
	return r.do(func() error { return nil })
}

// DrainNotifications returns all pending completion notifications, oldest
// first, leaving the queue empty.
func (r *Runner) DrainNotifications() []Notification {
	out := make([]Notification, 0, len(r.notifs))
	for {
		select {
		case n := <-r.notifs:
			out = append(out, n)
		default:
			return out
		}
	}
}

// Close stops the loop and its ticker. Pending commands fail with
// context.Canceled.
func (r *Runner) Close() {
	close(r.quit)
	<-r.done
}
