// Package clock schedules the repeating display refresh. Callers depend on
// the Scheduler interface so tests can fire ticks by hand.
package clock

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/julianstephens/adhan/internal/logger"
)

// ErrStopped is returned when scheduling on a scheduler that has shut down.
var ErrStopped = errors.New("scheduler stopped")

// Handle cancels one repeating callback. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Scheduler runs fn every interval until the returned handle is cancelled.
// Implementations may call fn before Every returns.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (Handle, error)
}

// GocronScheduler implements Scheduler on top of a gocron scheduler.
type GocronScheduler struct {
	mu      sync.Mutex
	s       gocron.Scheduler
	stopped bool
}

// New starts a gocron scheduler driven by clk. A nil clk uses the wall clock.
func New(clk clockwork.Clock) (*GocronScheduler, error) {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	s, err := gocron.NewScheduler(gocron.WithClock(clk))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	s.Start()
	return &GocronScheduler{s: s}, nil
}

func (g *GocronScheduler) Every(interval time.Duration, fn func()) (Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return nil, ErrStopped
	}

	// A slow callback is skipped rather than queued behind itself.
	job, err := g.s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(fn),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule job every %s: %w", interval, err)
	}

	logger.Debug("Scheduled repeating job", "id", job.ID(), "interval", interval)
	return &jobHandle{g: g, id: job.ID()}, nil
}

// Shutdown stops every job and the underlying scheduler.
func (g *GocronScheduler) Shutdown() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return nil
	}
	g.stopped = true
	return g.s.Shutdown()
}

func (g *GocronScheduler) remove(id uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	if err := g.s.RemoveJob(id); err != nil {
		logger.Warn("Failed to remove job", "id", id, "error", err)
	}
}

type jobHandle struct {
	once sync.Once
	g    *GocronScheduler
	id   uuid.UUID
}

func (h *jobHandle) Cancel() {
	h.once.Do(func() {
		h.g.remove(h.id)
	})
}
