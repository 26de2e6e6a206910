package cooktimer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tastehub/tastehub-go/pkg/cooktimer"
	"github.com/tastehub/tastehub-go/pkg/cooktimer/mocks"
	"github.com/tastehub/tastehub-go/pkg/countdown"
	"github.com/tastehub/tastehub-go/pkg/countdown/countdowntest"
	"github.com/tastehub/tastehub-go/pkg/log"
)

type eventSink struct {
	mu     sync.Mutex
	events []log.Event
}

func (s *eventSink) Log(e log.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *eventSink) byKind(k log.Kind) []log.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []log.Event
	for _, e := range s.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func newTimer(t *testing.T, prep, cook int, n cooktimer.Notifier) (*cooktimer.Timer, *countdowntest.ManualTicker, *eventSink) {
	t.Helper()
	ticker := countdowntest.NewManualTicker()
	sink := &eventSink{}
	timer, err := cooktimer.New(cooktimer.Config{
		RecipeID:    "malabar",
		PrepMinutes: prep,
		CookMinutes: cook,
		Notifier:    n,
		Logger:      sink,
		Ticker:      ticker.Func(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = timer.Close() })
	return timer, ticker, sink
}

func TestNewStartsInPrepMode(t *testing.T) {
	timer, _, _ := newTimer(t, 25, 40, nil)

	assert.Equal(t, cooktimer.ModePrep, timer.Mode())
	st := timer.State()
	assert.Equal(t, 25*60, st.RemainingSeconds)
	assert.Equal(t, 25*60, st.ConfiguredSeconds)
	assert.Equal(t, countdown.PhaseIdle, st.Phase())
	assert.Equal(t, "25:00", timer.Display())
	assert.NotEmpty(t, timer.SessionID())
}

func TestNewRejectsNegativeMinutes(t *testing.T) {
	_, err := cooktimer.New(cooktimer.Config{PrepMinutes: -1})
	assert.ErrorIs(t, err, cooktimer.ErrInvalidMinutes)

	_, err = cooktimer.New(cooktimer.Config{CookMinutes: -5})
	assert.ErrorIs(t, err, cooktimer.ErrInvalidMinutes)
}

func TestSelectModeResetsRunningCountdown(t *testing.T) {
	timer, ticker, sink := newTimer(t, 25, 40, nil)

	timer.Start()
	ticker.Advance(10)
	require.Equal(t, 25*60-10, timer.State().RemainingSeconds)

	require.NoError(t, timer.SelectMode(cooktimer.ModeCook))

	st := timer.State()
	assert.Equal(t, cooktimer.ModeCook, timer.Mode())
	assert.Equal(t, countdown.PhaseIdle, st.Phase())
	assert.Equal(t, 40*60, st.RemainingSeconds)
	assert.Equal(t, 40*60, st.ConfiguredSeconds)
	assert.Equal(t, 0, ticker.Active())

	modes := sink.byKind(log.KindMode)
	require.Len(t, modes, 1)
	assert.Equal(t, "cook", modes[0].Mode)
	assert.Equal(t, "malabar", modes[0].Label)
}

func TestSelectModeWhileIdleKeepsIdle(t *testing.T) {
	timer, _, _ := newTimer(t, 25, 40, nil)

	require.NoError(t, timer.SelectMode(cooktimer.ModeCook))
	require.NoError(t, timer.SelectMode(cooktimer.ModePrep))

	assert.Equal(t, cooktimer.ModePrep, timer.Mode())
	assert.Equal(t, 25*60, timer.State().RemainingSeconds)
	assert.False(t, timer.State().Running)
}

func TestSelectModeRejectsCustom(t *testing.T) {
	timer, _, _ := newTimer(t, 25, 40, nil)

	err := timer.SelectMode(cooktimer.ModeCustom)
	assert.ErrorIs(t, err, cooktimer.ErrInvalidMode)
	assert.Equal(t, cooktimer.ModePrep, timer.Mode())
}

func TestSetCustomMinutes(t *testing.T) {
	timer, ticker, _ := newTimer(t, 25, 40, nil)

	timer.Start()
	ticker.Advance(3)

	require.NoError(t, timer.SetCustomMinutes(90))
	st := timer.State()
	assert.Equal(t, cooktimer.ModeCustom, timer.Mode())
	assert.Equal(t, 90*60, st.RemainingSeconds)
	assert.False(t, st.Running)
	assert.Equal(t, "01:30:00", timer.Display())
}

func TestSetCustomMinutesRejectsNonPositive(t *testing.T) {
	timer, _, _ := newTimer(t, 25, 40, nil)

	for _, n := range []int{0, -3} {
		err := timer.SetCustomMinutes(n)
		assert.ErrorIs(t, err, cooktimer.ErrInvalidMinutes)
	}
	assert.Equal(t, cooktimer.ModePrep, timer.Mode())
	assert.Equal(t, 25*60, timer.State().ConfiguredSeconds)
}

func TestToggle(t *testing.T) {
	timer, ticker, _ := newTimer(t, 1, 2, nil)

	assert.Equal(t, cooktimer.ActionStart, timer.Toggle())
	assert.Equal(t, countdown.PhaseRunning, timer.State().Phase())

	ticker.Advance(5)
	assert.Equal(t, cooktimer.ActionPause, timer.Toggle())
	assert.Equal(t, countdown.PhasePaused, timer.State().Phase())

	ticker.Advance(5)
	assert.Equal(t, 55, timer.State().RemainingSeconds)

	assert.Equal(t, cooktimer.ActionResume, timer.Toggle())
	assert.Equal(t, countdown.PhaseRunning, timer.State().Phase())

	ticker.Advance(1)
	assert.Equal(t, 54, timer.State().RemainingSeconds)
}

func TestToggleReportsNoneWhenEngineDoesNothing(t *testing.T) {
	timer, ticker, _ := newTimer(t, 1, 2, nil)
	require.NoError(t, timer.Close())

	assert.Equal(t, cooktimer.ActionNone, timer.Toggle())
	assert.Equal(t, countdown.PhaseIdle, timer.State().Phase())
	assert.Equal(t, 0, ticker.Active())
}

func TestPauseAfterCompletionReportsFalse(t *testing.T) {
	timer, ticker, _ := newTimer(t, 1, 2, nil)
	require.True(t, timer.Start())
	ticker.Advance(60)
	require.Equal(t, countdown.PhaseIdle, timer.State().Phase())

	assert.False(t, timer.Pause())
	assert.False(t, timer.Resume())
}

func TestResetRestoresSelectedDuration(t *testing.T) {
	timer, ticker, _ := newTimer(t, 1, 2, nil)

	require.NoError(t, timer.SelectMode(cooktimer.ModeCook))
	timer.Start()
	ticker.Advance(30)
	timer.Pause()
	timer.Resume()
	timer.Reset()

	st := timer.State()
	assert.Equal(t, 120, st.RemainingSeconds)
	assert.Equal(t, countdown.PhaseIdle, st.Phase())
}

func TestProgress(t *testing.T) {
	timer, ticker, _ := newTimer(t, 1, 2, nil)

	assert.InDelta(t, 0.0, timer.Progress(), 1e-9)

	timer.Start()
	ticker.Advance(15)
	assert.InDelta(t, 25.0, timer.Progress(), 1e-9)

	ticker.Advance(15)
	assert.InDelta(t, 50.0, timer.Progress(), 1e-9)
}

func TestProgressZeroDuration(t *testing.T) {
	timer, _, _ := newTimer(t, 0, 0, nil)
	assert.InDelta(t, 0.0, timer.Progress(), 1e-9)
}

func TestCompletionNotifies(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(a cooktimer.Alert) bool {
		return a.Title == "Timer Complete!" &&
			a.Body == "Your cooking timer has finished." &&
			a.RecipeID == "malabar" &&
			a.Mode == cooktimer.ModePrep
	})).Return(nil).Once()

	timer, ticker, sink := newTimer(t, 1, 2, notifier)

	timer.Start()
	ticker.Advance(60)

	st := timer.State()
	assert.Equal(t, 0, st.RemainingSeconds)
	assert.Equal(t, countdown.PhaseIdle, st.Phase())
	assert.Equal(t, 0, ticker.Active())

	alerts := sink.byKind(log.KindAlert)
	require.Len(t, alerts, 1)
	assert.Empty(t, alerts[0].Error)
	assert.Equal(t, "prep", alerts[0].Mode)

	// No further alerts after completion.
	ticker.Advance(10)
	assert.Len(t, sink.byKind(log.KindAlert), 1)
}

func TestCompletionNotifierErrorIsRecorded(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).
		Return(errors.New("speaker unplugged")).Once()

	timer, ticker, sink := newTimer(t, 1, 2, notifier)
	require.NoError(t, timer.SetCustomMinutes(1))

	timer.Start()
	ticker.Advance(60)

	alerts := sink.byKind(log.KindAlert)
	require.Len(t, alerts, 1)
	assert.Equal(t, "speaker unplugged", alerts[0].Error)
	assert.Equal(t, "custom", alerts[0].Mode)
	assert.Equal(t, countdown.PhaseIdle, timer.State().Phase())
}

func TestCompletionNotifyHasDeadline(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ cooktimer.Alert) error {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(cooktimer.DefaultAlertTimeout), deadline, time.Second)
			return nil
		}).Once()

	timer, ticker, _ := newTimer(t, 1, 2, notifier)
	timer.Start()
	ticker.Advance(60)
}

func TestResetBeforeCompletionDoesNotNotify(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	timer, ticker, _ := newTimer(t, 1, 2, notifier)

	timer.Start()
	ticker.Advance(59)
	timer.Reset()
	ticker.Advance(5)

	assert.Equal(t, 60, timer.State().RemainingSeconds)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestCloseStopsTicking(t *testing.T) {
	timer, ticker, _ := newTimer(t, 1, 2, nil)

	timer.Start()
	ticker.Advance(2)
	require.NoError(t, timer.Close())
	require.NoError(t, timer.Close())

	ticker.Advance(5)
	assert.Equal(t, 58, timer.State().RemainingSeconds)

	timer.Start()
	assert.False(t, timer.State().Running)
}

func TestParseMode(t *testing.T) {
	m, err := cooktimer.ParseMode(" Cook ")
	require.NoError(t, err)
	assert.Equal(t, cooktimer.ModeCook, m)

	m, err = cooktimer.ParseMode("prep")
	require.NoError(t, err)
	assert.Equal(t, cooktimer.ModePrep, m)

	_, err = cooktimer.ParseMode("custom")
	assert.ErrorIs(t, err, cooktimer.ErrInvalidMode)
}

func TestModeAndActionStrings(t *testing.T) {
	assert.Equal(t, "prep", cooktimer.ModePrep.String())
	assert.Equal(t, "cook", cooktimer.ModeCook.String())
	assert.Equal(t, "custom", cooktimer.ModeCustom.String())
	assert.Equal(t, "unknown", cooktimer.Mode(9).String())

	assert.Equal(t, "start", cooktimer.ActionStart.String())
	assert.Equal(t, "pause", cooktimer.ActionPause.String())
	assert.Equal(t, "resume", cooktimer.ActionResume.String())
	assert.Equal(t, "none", cooktimer.ActionNone.String())
}
