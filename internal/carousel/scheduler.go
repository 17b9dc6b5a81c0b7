package carousel

import (
	"sync"
	"time"

	"github.com/glidetui/glide/internal/logger"
	glideerrors "github.com/glidetui/glide/pkg/errors"
)

// Scheduler owns the periodic auto-scroll timer for one carousel. Start and
// Stop form an acquire/release pair: Stop guarantees the callback cannot
// fire after it returns, so a torn-down carousel can never be mutated by a
// late tick.
//
// Misuse (starting twice, starting without an interval) is recovered: the
// call is a logged no-op that also returns a SchedulerError for callers
// that want to assert on it. Stop is idempotent.
type Scheduler struct {
	clock Clock
	log   *logger.Logger

	mu      sync.Mutex
	running bool
	ticker  Ticker
	done    chan struct{}
}

// NewScheduler creates a stopped scheduler. A nil clock selects the system
// clock; a nil logger silences misuse warnings.
func NewScheduler(clock Clock, log *logger.Logger) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{clock: clock, log: log}
}

// Start begins invoking onTick every interval. The callback runs with the
// scheduler's internal lock held, which is what makes the Stop guarantee
// airtight; onTick must therefore not call Start or Stop itself.
func (s *Scheduler) Start(interval time.Duration, onTick func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interval <= 0 {
		s.log.Warn("auto-scroll start ignored: no interval configured")
		return glideerrors.NewSchedulerError("start", "interval must be positive")
	}
	if s.running {
		s.log.Warn("auto-scroll start ignored: already running")
		return glideerrors.NewSchedulerError("start", "already running")
	}

	s.running = true
	s.ticker = s.clock.NewTicker(interval)
	s.done = make(chan struct{})

	go s.loop(s.ticker, s.done, onTick)
	return nil
}

// Stop cancels the timer. It is idempotent, callable from any phase, and
// once it returns no further onTick invocation can occur: the tick loop
// re-checks the running flag under the same lock Stop holds, so an in-flight
// callback has completed before Stop's caller continues.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

// IsRunning reports whether the timer is live.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) loop(ticker Ticker, done chan struct{}, onTick func()) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C():
			if !s.dispatch(done, onTick) {
				return
			}
		}
	}
}

// dispatch runs one tick under the lock, dropping it if the scheduler was
// stopped between the channel receive and the lock acquisition.
func (s *Scheduler) dispatch(done chan struct{}, onTick func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.done != done {
		return false
	}
	onTick()
	return true
}
