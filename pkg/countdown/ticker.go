package countdown

import (
	"sync"
	"time"
)

// DefaultPeriod is the interval between ticks.
const DefaultPeriod = time.Second

// Ticker is a recurring callback schedule that can be cancelled.
type Ticker interface {
	// Stop cancels the schedule. It is safe to call more than once and
	// from within the tick callback itself.
	Stop()
}

// TickerFunc installs fn to be called once per period until the returned
// Ticker is stopped.
type TickerFunc func(period time.Duration, fn func()) Ticker

// NewSystemTicker is the default TickerFunc, backed by time.Ticker.
// Callbacks run sequentially on a dedicated goroutine.
func NewSystemTicker(period time.Duration, fn func()) Ticker {
	t := &systemTicker{
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type systemTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *systemTicker) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *systemTicker) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

// Compile-time interface satisfaction check.
var _ TickerFunc = NewSystemTicker
