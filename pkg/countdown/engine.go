package countdown

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tastehub/tastehub-go/pkg/log"
)

// Engine errors.
var (
	ErrNegativeDuration = errors.New("negative duration")
)

// Phase is the externally visible state of an engine.
type Phase uint8

const (
	// PhaseIdle means no countdown is active. Completion also returns here.
	PhaseIdle Phase = iota

	// PhaseRunning means the countdown is ticking.
	PhaseRunning

	// PhasePaused means the countdown was started and is suspended.
	PhasePaused
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseRunning:
		return "RUNNING"
	case PhasePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// State is a point-in-time copy of an engine's fields.
type State struct {
	RemainingSeconds  int
	ConfiguredSeconds int
	Running           bool
	Paused            bool
}

// Phase derives the phase from the running and paused flags.
func (s State) Phase() Phase {
	switch {
	case !s.Running:
		return PhaseIdle
	case s.Paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// Config holds engine construction parameters.
type Config struct {
	// InitialSeconds is the starting and configured duration.
	InitialSeconds int

	// OnComplete is invoked once per countdown that reaches zero.
	// It runs after the engine has returned to Idle, outside the engine lock.
	OnComplete func()

	// OnTick is invoked after every applied tick with the new state.
	OnTick func(State)

	// Period overrides the tick interval. Zero means DefaultPeriod.
	Period time.Duration

	// Ticker overrides the tick source. Nil means NewSystemTicker.
	Ticker TickerFunc

	// Logger receives an event for every operation. Nil disables capture.
	Logger log.Logger

	// SessionID identifies the engine in captured events.
	// Generated when empty.
	SessionID string

	// Label is copied into every captured event.
	Label string
}

// Engine is a single countdown with run/pause state.
// It is safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	remaining  int
	configured int
	running    bool
	paused     bool
	closed     bool

	// Active tick schedule and its generation. A tick is applied only if
	// it carries the current generation.
	ticker Ticker
	gen    uint64

	period     time.Duration
	newTicker  TickerFunc
	onComplete func()
	onTick     func(State)

	logger    log.Logger
	sessionID string
	label     string
}

// New creates an idle engine configured with cfg.InitialSeconds.
func New(cfg Config) (*Engine, error) {
	if cfg.InitialSeconds < 0 {
		return nil, ErrNegativeDuration
	}

	e := &Engine{
		remaining:  cfg.InitialSeconds,
		configured: cfg.InitialSeconds,
		period:     cfg.Period,
		newTicker:  cfg.Ticker,
		onComplete: cfg.OnComplete,
		onTick:     cfg.OnTick,
		logger:     cfg.Logger,
		sessionID:  cfg.SessionID,
		label:      cfg.Label,
	}

	if e.period <= 0 {
		e.period = DefaultPeriod
	}
	if e.newTicker == nil {
		e.newTicker = NewSystemTicker
	}
	if e.logger == nil {
		e.logger = log.NoopLogger{}
	}
	if e.sessionID == "" {
		e.sessionID = uuid.New().String()
	}

	return e, nil
}

// SessionID returns the identifier used in captured events.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.State().Phase()
}

// Remaining returns the seconds left in the current countdown.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// Configured returns the duration Reset restores.
func (e *Engine) Configured() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.configured
}

// Running returns true once started until reset or completion.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Paused returns true while a started countdown is suspended.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Start begins ticking from the current remaining time. Calling Start while
// already running replaces the tick schedule. Start never completes the
// countdown by itself, even when remaining is zero: the next tick does.
// It reports false only when the engine is closed.
func (e *Engine) Start() bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}

	old := e.stateLocked().Phase()
	e.running = true
	e.paused = false
	e.scheduleLocked()
	event := e.eventLocked(log.KindStart, old)
	e.mu.Unlock()

	e.logger.Log(event)
	return true
}

// Pause suspends ticking without changing the remaining time.
// It is a no-op unless the countdown is running and not already paused,
// and reports whether it paused.
func (e *Engine) Pause() bool {
	e.mu.Lock()
	if !e.running || e.paused {
		e.mu.Unlock()
		return false
	}

	e.cancelLocked()
	e.paused = true
	event := e.eventLocked(log.KindPause, PhaseRunning)
	e.mu.Unlock()

	e.logger.Log(event)
	return true
}

// Resume continues a paused countdown with a fresh tick schedule.
// It is a no-op unless the countdown is paused, and reports whether it
// resumed.
func (e *Engine) Resume() bool {
	e.mu.Lock()
	if e.closed || !e.running || !e.paused {
		e.mu.Unlock()
		return false
	}

	e.paused = false
	e.scheduleLocked()
	event := e.eventLocked(log.KindResume, PhasePaused)
	e.mu.Unlock()

	e.logger.Log(event)
	return true
}

// Reset stops any countdown and restores the configured duration.
// Safe from any phase. A pending completion for the current run is dropped.
func (e *Engine) Reset() {
	e.mu.Lock()
	old := e.stateLocked().Phase()
	e.cancelLocked()
	e.running = false
	e.paused = false
	e.remaining = e.configured
	event := e.eventLocked(log.KindReset, old)
	e.mu.Unlock()

	e.logger.Log(event)
}

// SetConfiguredSeconds sets the configured duration and applies it to the
// remaining time immediately. A running countdown keeps ticking from the
// new value. Negative values are rejected and leave the engine unchanged.
func (e *Engine) SetConfiguredSeconds(n int) error {
	if n < 0 {
		return ErrNegativeDuration
	}

	e.mu.Lock()
	old := e.stateLocked().Phase()
	e.configured = n
	e.remaining = n
	event := e.eventLocked(log.KindConfigure, old)
	e.mu.Unlock()

	e.logger.Log(event)
	return nil
}

// Close releases the tick schedule. The engine keeps its last state but
// never ticks again. It is safe to call Close multiple times.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}

	old := e.stateLocked().Phase()
	e.cancelLocked()
	e.closed = true
	e.running = false
	e.paused = false
	event := e.eventLocked(log.KindClose, old)
	e.mu.Unlock()

	e.logger.Log(event)
	return nil
}

// tick applies one decrement if gen is still the live schedule.
func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || !e.running || e.paused {
		e.mu.Unlock()
		return
	}

	if e.remaining > 0 {
		e.remaining--
	}

	if e.remaining > 0 {
		state := e.stateLocked()
		event := e.eventLocked(log.KindTick, PhaseRunning)
		onTick := e.onTick
		e.mu.Unlock()

		e.logger.Log(event)
		if onTick != nil {
			onTick(state)
		}
		return
	}

	// Reached zero: return to Idle before anyone hears about it.
	e.cancelLocked()
	e.running = false
	e.paused = false
	state := e.stateLocked()
	event := e.eventLocked(log.KindComplete, PhaseRunning)
	onTick := e.onTick
	onComplete := e.onComplete
	e.mu.Unlock()

	e.logger.Log(event)
	if onTick != nil {
		onTick(state)
	}
	if onComplete != nil {
		onComplete()
	}
}

// scheduleLocked replaces any live ticker with a new one.
func (e *Engine) scheduleLocked() {
	e.cancelLocked()
	gen := e.gen
	e.ticker = e.newTicker(e.period, func() { e.tick(gen) })
}

// cancelLocked stops the live ticker and invalidates its pending ticks.
func (e *Engine) cancelLocked() {
	e.gen++
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

func (e *Engine) stateLocked() State {
	return State{
		RemainingSeconds:  e.remaining,
		ConfiguredSeconds: e.configured,
		Running:           e.running,
		Paused:            e.paused,
	}
}

func (e *Engine) eventLocked(kind log.Kind, old Phase) log.Event {
	return log.Event{
		Timestamp:  time.Now(),
		SessionID:  e.sessionID,
		Kind:       kind,
		Label:      e.label,
		Remaining:  e.remaining,
		Configured: e.configured,
		OldPhase:   old.String(),
		NewPhase:   e.stateLocked().Phase().String(),
	}
}
