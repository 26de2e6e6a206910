package tastehub_test

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastehub/tastehub-go/cmd/tastehub/commands"
	"github.com/tastehub/tastehub-go/pkg/cooktimer"
	"github.com/tastehub/tastehub-go/pkg/countdown"
	"github.com/tastehub/tastehub-go/pkg/countdown/countdowntest"
	"github.com/tastehub/tastehub-go/pkg/log"
	"github.com/tastehub/tastehub-go/pkg/recipe"
)

// TestE2E_CookingSession runs a recipe's timer through prep, a pause and a
// completed custom countdown, then reads the captured session back.
func TestE2E_CookingSession(t *testing.T) {
	r, err := recipe.Builtin().Get("malabar")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "malabar.tlog")
	fileLogger, err := log.NewFileLogger(path)
	require.NoError(t, err)

	var mu sync.Mutex
	var alerts []cooktimer.Alert
	notifier := cooktimer.NotifierFunc(func(_ context.Context, a cooktimer.Alert) error {
		mu.Lock()
		defer mu.Unlock()
		alerts = append(alerts, a)
		return nil
	})

	ticker := countdowntest.NewManualTicker()
	timer, err := cooktimer.New(cooktimer.Config{
		RecipeID:    r.ID,
		PrepMinutes: r.PrepMinutes,
		CookMinutes: r.CookMinutes,
		Notifier:    notifier,
		Logger:      log.NewMultiLogger(fileLogger, log.NoopLogger{}),
		Ticker:      ticker.Func(),
	})
	require.NoError(t, err)

	// Prep: run 30 seconds, pause, resume, then switch to a 1 minute custom timer.
	assert.Equal(t, "25:00", timer.Display())
	timer.Toggle()
	ticker.Advance(30)
	timer.Toggle()
	ticker.Advance(30)
	assert.Equal(t, "24:30", timer.Display())
	timer.Toggle()

	require.NoError(t, timer.SetCustomMinutes(1))
	assert.Equal(t, countdown.PhaseIdle, timer.State().Phase())

	timer.Start()
	ticker.Advance(60)
	assert.Equal(t, countdown.PhaseIdle, timer.State().Phase())
	assert.Equal(t, "00:00", timer.Display())

	require.NoError(t, timer.Close())
	require.NoError(t, fileLogger.Close())

	mu.Lock()
	require.Len(t, alerts, 1)
	assert.Equal(t, cooktimer.ModeCustom, alerts[0].Mode)
	mu.Unlock()

	// Read the session back.
	reader, err := log.NewReader(path)
	require.NoError(t, err)
	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.NoError(t, reader.Close())

	kinds := map[log.Kind]int{}
	for _, e := range events {
		assert.Equal(t, timer.SessionID(), e.SessionID)
		assert.Equal(t, "malabar", e.Label)
		kinds[e.Kind]++
	}
	assert.Equal(t, 2, kinds[log.KindStart])
	assert.Equal(t, 1, kinds[log.KindPause])
	assert.Equal(t, 1, kinds[log.KindResume])
	assert.Equal(t, 1, kinds[log.KindReset])
	assert.Equal(t, 1, kinds[log.KindMode])
	assert.Equal(t, 1, kinds[log.KindComplete])
	assert.Equal(t, 1, kinds[log.KindAlert])
	assert.Equal(t, 1, kinds[log.KindClose])
	assert.Equal(t, 30+59, kinds[log.KindTick])

	stats, err := commands.CollectStats(path)
	require.NoError(t, err)
	require.Len(t, stats.Sessions, 1)
	assert.Equal(t, 1, stats.Sessions[timer.SessionID()].Completions)
	assert.Equal(t, "custom", stats.Sessions[timer.SessionID()].LastMode)

	var buf bytes.Buffer
	require.NoError(t, commands.RunView(path, commands.ViewFilter{SkipTicks: true}, &buf))
	assert.Contains(t, buf.String(), "IDLE -> RUNNING")
	assert.Contains(t, buf.String(), "RUNNING -> IDLE")
}
