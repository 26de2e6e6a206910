// Package cooktimer implements the cooking timer shown on a recipe page.
//
// A Timer owns one countdown engine and switches its configured duration
// between the recipe's prep time, its cook time, or a custom number of
// minutes. When the countdown finishes, an Alert is sent to the configured
// Notifier.
package cooktimer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tastehub/tastehub-go/pkg/countdown"
	"github.com/tastehub/tastehub-go/pkg/log"
)

// Timer errors.
var (
	ErrInvalidMinutes = errors.New("invalid minutes")
	ErrInvalidMode    = errors.New("invalid mode")
)

// DefaultAlertTimeout bounds a single Notify call.
const DefaultAlertTimeout = 5 * time.Second

// Mode selects which duration the timer counts down.
type Mode uint8

const (
	// ModePrep counts down the recipe's preparation time.
	ModePrep Mode = iota

	// ModeCook counts down the recipe's cooking time.
	ModeCook

	// ModeCustom counts down a duration chosen by the cook.
	ModeCustom
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePrep:
		return "prep"
	case ModeCook:
		return "cook"
	case ModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseMode converts "prep" or "cook" to a Mode. Custom mode is entered
// through SetCustomMinutes and cannot be parsed.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prep":
		return ModePrep, nil
	case "cook":
		return ModeCook, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Action is what Toggle did.
type Action uint8

const (
	ActionStart Action = iota
	ActionPause
	ActionResume

	// ActionNone means the countdown changed phase underneath the toggle,
	// such as completing just before a pause, or the timer is closed.
	ActionNone
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	case ActionNone:
		return "none"
	default:
		return "unknown"
	}
}

// Config holds cooking timer parameters.
type Config struct {
	// RecipeID labels events and alerts.
	RecipeID string

	// PrepMinutes and CookMinutes are the recipe's durations.
	PrepMinutes int
	CookMinutes int

	// Notifier receives completion alerts. Nil disables alerts.
	Notifier Notifier

	// AlertTimeout bounds each Notify call. Zero means DefaultAlertTimeout.
	AlertTimeout time.Duration

	// Logger receives engine and timer events. Nil disables capture.
	Logger log.Logger

	// Ticker, Period and OnTick are passed to the countdown engine.
	Ticker countdown.TickerFunc
	Period time.Duration
	OnTick func(countdown.State)
}

// Timer is the prep/cook/custom cooking timer for one recipe view.
type Timer struct {
	mu sync.Mutex

	engine *countdown.Engine

	recipeID      string
	prepMinutes   int
	cookMinutes   int
	customMinutes int
	mode          Mode

	notifier     Notifier
	alertTimeout time.Duration
	logger       log.Logger
}

// New creates a timer in prep mode, configured for the prep time.
func New(cfg Config) (*Timer, error) {
	if cfg.PrepMinutes < 0 || cfg.CookMinutes < 0 {
		return nil, fmt.Errorf("%w: prep=%d cook=%d", ErrInvalidMinutes, cfg.PrepMinutes, cfg.CookMinutes)
	}

	t := &Timer{
		recipeID:     cfg.RecipeID,
		prepMinutes:  cfg.PrepMinutes,
		cookMinutes:  cfg.CookMinutes,
		mode:         ModePrep,
		notifier:     cfg.Notifier,
		alertTimeout: cfg.AlertTimeout,
		logger:       cfg.Logger,
	}
	if t.alertTimeout <= 0 {
		t.alertTimeout = DefaultAlertTimeout
	}
	if t.logger == nil {
		t.logger = log.NoopLogger{}
	}

	engine, err := countdown.New(countdown.Config{
		InitialSeconds: cfg.PrepMinutes * 60,
		OnComplete:     t.complete,
		OnTick:         cfg.OnTick,
		Period:         cfg.Period,
		Ticker:         cfg.Ticker,
		Logger:         t.logger,
		Label:          cfg.RecipeID,
	})
	if err != nil {
		return nil, err
	}
	t.engine = engine

	return t, nil
}

// Mode returns the selected mode.
func (t *Timer) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// SelectMode switches to the prep or cook duration. A countdown in
// progress is reset first.
func (t *Timer) SelectMode(m Mode) error {
	var minutes int
	switch m {
	case ModePrep:
		minutes = t.prepMinutes
	case ModeCook:
		minutes = t.cookMinutes
	default:
		return fmt.Errorf("%w: %s (use SetCustomMinutes)", ErrInvalidMode, m)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.applyLocked(m, minutes)
}

// SetCustomMinutes switches to a custom duration. Minutes must be positive;
// otherwise the timer is left unchanged.
func (t *Timer) SetCustomMinutes(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMinutes, minutes)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.customMinutes = minutes
	return t.applyLocked(ModeCustom, minutes)
}

func (t *Timer) applyLocked(m Mode, minutes int) error {
	if t.engine.Running() {
		t.engine.Reset()
	}
	if err := t.engine.SetConfiguredSeconds(minutes * 60); err != nil {
		return err
	}
	t.mode = m

	st := t.engine.State()
	t.logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  t.engine.SessionID(),
		Kind:       log.KindMode,
		Label:      t.recipeID,
		Remaining:  st.RemainingSeconds,
		Configured: st.ConfiguredSeconds,
		Mode:       m.String(),
	})
	return nil
}

// Toggle performs the primary button action: start when idle, resume when
// paused, pause when ticking. It returns the action the engine actually
// took, which is ActionNone when a tick completed the countdown first.
func (t *Timer) Toggle() Action {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.engine.Phase() {
	case countdown.PhaseIdle:
		if t.engine.Start() {
			return ActionStart
		}
	case countdown.PhasePaused:
		if t.engine.Resume() {
			return ActionResume
		}
	default:
		if t.engine.Pause() {
			return ActionPause
		}
	}
	return ActionNone
}

// Start starts the countdown. It reports false when the timer is closed.
func (t *Timer) Start() bool { return t.engine.Start() }

// Pause pauses a ticking countdown and reports whether it did.
func (t *Timer) Pause() bool { return t.engine.Pause() }

// Resume resumes a paused countdown and reports whether it did.
func (t *Timer) Resume() bool { return t.engine.Resume() }

// Reset restores the selected duration.
func (t *Timer) Reset() { t.engine.Reset() }

// State returns the engine state.
func (t *Timer) State() countdown.State {
	return t.engine.State()
}

// Display returns the remaining time formatted for the clock face.
func (t *Timer) Display() string {
	return countdown.FormatTime(t.engine.Remaining())
}

// Progress returns the elapsed share of the configured duration in percent.
// A zero duration reports 0.
func (t *Timer) Progress() float64 {
	st := t.engine.State()
	if st.ConfiguredSeconds == 0 {
		return 0
	}
	elapsed := st.ConfiguredSeconds - st.RemainingSeconds
	return float64(elapsed) / float64(st.ConfiguredSeconds) * 100
}

// SessionID returns the engine's session identifier.
func (t *Timer) SessionID() string {
	return t.engine.SessionID()
}

// Close releases the countdown engine. Safe to call multiple times.
func (t *Timer) Close() error {
	return t.engine.Close()
}

// complete runs on the engine's tick path once the countdown reaches zero.
func (t *Timer) complete() {
	t.mu.Lock()
	mode := t.mode
	t.mu.Unlock()

	if t.notifier == nil {
		return
	}

	alert := DefaultAlert()
	alert.RecipeID = t.recipeID
	alert.Mode = mode

	ctx, cancel := context.WithTimeout(context.Background(), t.alertTimeout)
	defer cancel()

	event := log.Event{
		Timestamp:  time.Now(),
		SessionID:  t.engine.SessionID(),
		Kind:       log.KindAlert,
		Label:      t.recipeID,
		Configured: t.engine.Configured(),
		Mode:       mode.String(),
	}

	if err := t.notifier.Notify(ctx, alert); err != nil {
		slog.Warn("Timer alert failed",
			slog.String("recipe_id", t.recipeID),
			slog.String("mode", mode.String()),
			slog.String("error", err.Error()),
		)
		event.Error = err.Error()
	}

	t.logger.Log(event)
}
