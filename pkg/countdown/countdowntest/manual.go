// Package countdowntest provides a deterministic tick source for tests of
// code built on countdown engines.
package countdowntest

import (
	"sync"
	"time"

	"github.com/tastehub/tastehub-go/pkg/countdown"
)

// ManualTicker is a countdown.TickerFunc factory whose ticks are delivered
// only when Advance is called. Callbacks run synchronously on the caller's
// goroutine, so state is observable as soon as Advance returns.
type ManualTicker struct {
	mu      sync.Mutex
	active  []*manualSchedule
	created int
}

type manualSchedule struct {
	owner   *ManualTicker
	period  time.Duration
	fn      func()
	stopped bool
}

// NewManualTicker creates a ManualTicker with no schedules.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

// Func returns the TickerFunc to pass in countdown.Config.
func (m *ManualTicker) Func() countdown.TickerFunc {
	return m.install
}

func (m *ManualTicker) install(period time.Duration, fn func()) countdown.Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &manualSchedule{owner: m, period: period, fn: fn}
	m.active = append(m.active, s)
	m.created++
	return s
}

// Advance delivers n ticks to every live schedule, one round at a time.
// Schedules stopped during a round receive no further ticks.
func (m *ManualTicker) Advance(n int) {
	for range n {
		m.mu.Lock()
		round := make([]*manualSchedule, len(m.active))
		copy(round, m.active)
		m.mu.Unlock()

		for _, s := range round {
			if s.live() {
				s.fn()
			}
		}
	}
}

// Active returns the number of schedules that have not been stopped.
func (m *ManualTicker) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

// Created returns how many schedules have been installed in total.
func (m *ManualTicker) Created() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created
}

// Periods returns the period of every live schedule.
func (m *ManualTicker) Periods() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	periods := make([]time.Duration, 0, len(m.active))
	for _, s := range m.active {
		periods = append(periods, s.period)
	}
	return periods
}

func (s *manualSchedule) live() bool {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return !s.stopped
}

// Stop removes the schedule. Safe to call repeatedly.
func (s *manualSchedule) Stop() {
	m := s.owner
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	for i, a := range m.active {
		if a == s {
			m.active = append(m.active[:i], m.active[i+1:]...)
			break
		}
	}
}
