package server

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Monitor logs estimate throughput at a fixed interval. The clock is
// injected so tests can drive the ticker deterministically.
type Monitor struct {
	logger   *log.Logger
	clock    quartz.Clock
	interval time.Duration

	mu         sync.Mutex
	estimates  int
	iterations int64
}

// NewMonitor creates a monitor that reports every interval once started.
func NewMonitor(logger *log.Logger, clock quartz.Clock, interval time.Duration) *Monitor {
	return &Monitor{
		logger:   logger.WithPrefix("monitor"),
		clock:    clock,
		interval: interval,
	}
}

// Record notes one completed estimate and how many iterations it ran.
func (m *Monitor) Record(iterations int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.estimates++
	m.iterations += int64(iterations)
}

// Snapshot returns and resets the counters accumulated since the last call.
func (m *Monitor) Snapshot() (estimates int, iterations int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	estimates, iterations = m.estimates, m.iterations
	m.estimates, m.iterations = 0, 0
	return estimates, iterations
}

// Run reports until the context is cancelled. Intervals with no activity are
// not logged.
func (m *Monitor) Run(ctx context.Context) {
	ticker := m.clock.TickerFunc(ctx, m.interval, func() error {
		estimates, iterations := m.Snapshot()
		if estimates > 0 {
			m.logger.Info("Throughput",
				"estimates", estimates,
				"iterations", iterations,
				"interval", m.interval)
		}
		return nil
	}, "monitor")
	_ = ticker.Wait()
}
