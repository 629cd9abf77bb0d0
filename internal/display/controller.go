// Package display owns the prayer display state: the two backend fetches,
// the one-second refresh, and the period and fasting flags derived from them.
package display

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/julianstephens/adhan/internal/clock"
	"github.com/julianstephens/adhan/internal/constants"
	"github.com/julianstephens/adhan/internal/logger"
	"github.com/julianstephens/adhan/internal/models"
	"github.com/julianstephens/adhan/internal/prayer"
)

var (
	ErrAlreadyInitialized = errors.New("display already initialized")
	ErrTornDown           = errors.New("display torn down")
	ErrNotInitialized     = errors.New("display not initialized")
)

// Fetcher is the backend the controller reads from.
type Fetcher interface {
	FetchTimings(ctx context.Context, city, country string) (models.Timings, error)
	FetchDayLabel(ctx context.Context, city, country string) (string, error)
}

type Option func(*Controller)

// WithClock sets the source of "now". Defaults to the wall clock.
func WithClock(clk clockwork.Clock) Option {
	return func(c *Controller) {
		c.clock = clk
	}
}

func WithLocation(city, country string) Option {
	return func(c *Controller) {
		c.city = city
		c.country = country
	}
}

// WithOnChange registers fn to receive a snapshot after every change. fn runs
// outside the controller lock on the goroutine that caused the change.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller serializes fetch completions and ticks through one mutex, so
// each event observes the state left by the previous one.
type Controller struct {
	mu        sync.Mutex
	fetcher   Fetcher
	scheduler clock.Scheduler
	clock     clockwork.Clock
	city      string
	country   string
	onChange  func(State)

	version   uint64
	now       time.Time
	tickCount int
	timings   models.Result[models.Timings]
	dayLabel  models.Result[string]
	parseErr  error
	schedule  *prayer.Schedule
	period    models.Period
	fasting   bool

	initialized bool
	tornDown    bool
	handle      clock.Handle
	cancel      context.CancelFunc
	done        chan struct{}
}

func New(fetcher Fetcher, scheduler clock.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		fetcher:   fetcher,
		scheduler: scheduler,
		clock:     clockwork.NewRealClock(),
		city:      constants.DefaultCity,
		country:   constants.DefaultCountry,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.now = c.clock.Now()
	return c
}

// Initialize starts both fetches and the repeating refresh.
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.tornDown:
		c.mu.Unlock()
		return ErrTornDown
	case c.initialized:
		c.mu.Unlock()
		return ErrAlreadyInitialized
	}
	c.initialized = true
	c.mu.Unlock()

	// The lock is released here: a scheduler may run OnTick before Every
	// returns.
	handle, err := c.scheduler.Every(constants.TickInterval, c.OnTick)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.initialized = false
		return err
	}
	if c.tornDown {
		handle.Cancel()
		return ErrTornDown
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	c.handle = handle
	c.cancel = cancel
	c.done = make(chan struct{})

	logger.Info("Initializing display", "city", c.city, "country", c.country)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		timings, err := c.fetcher.FetchTimings(fetchCtx, c.city, c.country)
		if err != nil {
			c.OnTimingsFailed(err)
			return
		}
		c.OnTimingsLoaded(timings)
	}()
	go func() {
		defer wg.Done()
		label, err := c.fetcher.FetchDayLabel(fetchCtx, c.city, c.country)
		if err != nil {
			c.OnDayLabelFailed(err)
			return
		}
		c.OnDayLabelLoaded(label)
	}()
	go func() {
		wg.Wait()
		close(c.done)
	}()

	return nil
}

// Wait blocks until both fetches have completed or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return ErrNotInitialized
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnTimingsLoaded parses the received timings for today. A malformed field
// leaves no period state at all; loading is marked complete either way.
func (c *Controller) OnTimingsLoaded(timings models.Timings) {
	c.update(func() {
		c.timings = models.Ok(timings)
		c.now = c.clock.Now()

		s, err := prayer.ParseSchedule(timings, c.now)
		if err != nil {
			logger.Error("Error parsing prayer times", "error", err, "timings", timings)
			c.parseErr = err
			c.schedule = nil
		} else {
			logger.Debug("Prayer timings received", "timings", timings)
			c.parseErr = nil
			c.schedule = &s
		}
		c.recompute()
	})
}

func (c *Controller) OnTimingsFailed(err error) {
	c.update(func() {
		logger.Error("Prayer API error", "error", err)
		c.timings = models.Fail[models.Timings](err)
	})
}

func (c *Controller) OnDayLabelLoaded(label string) {
	c.update(func() {
		logger.Debug("Day label received", "label", label)
		c.dayLabel = models.Ok(label)
	})
}

func (c *Controller) OnDayLabelFailed(err error) {
	c.update(func() {
		logger.Error("Day label error", "error", err)
		c.dayLabel = models.Fail[string](err)
	})
}

// OnTick refreshes the clock and the derived period. It never touches the
// network and is a no-op for period state until timings are parsed.
func (c *Controller) OnTick() {
	c.update(func() {
		c.now = c.clock.Now()
		c.tickCount++

		// Starts are tied to the day they were parsed for.
		if c.schedule != nil && !c.schedule.SameDay(c.now) {
			s, err := prayer.ParseSchedule(c.timings.Value, c.now)
			if err != nil {
				logger.Error("Error re-parsing prayer times", "error", err, "timings", c.timings.Value)
				c.parseErr = err
				c.schedule = nil
			} else {
				logger.Debug("Day changed, re-parsed prayer times", "day", s.Day.Format("2006-01-02"))
				c.schedule = &s
			}
		}
		c.recompute()
	})
}

// Teardown stops the refresh and abandons in-flight fetches. It is safe to
// call more than once or before Initialize.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tornDown {
		return
	}
	c.tornDown = true
	if c.handle != nil {
		c.handle.Cancel()
	}
	if c.cancel != nil {
		c.cancel()
	}
	logger.Debug("Display torn down", "ticks", c.tickCount)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) Status() string {
	return c.State().Status()
}

func (c *Controller) BackgroundColor() string {
	return c.State().BackgroundColor()
}

// update applies fn under the lock and publishes the resulting snapshot.
// Events that arrive after Teardown are dropped.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return
	}
	fn()
	c.version++
	s := c.snapshot()
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(s)
	}
}

func (c *Controller) recompute() {
	if c.schedule == nil {
		c.period = models.PeriodNone
		c.fasting = false
		return
	}
	c.period = prayer.CurrentPeriod(c.now, *c.schedule)
	c.fasting = prayer.IsFasting(c.now, *c.schedule)
}

func (c *Controller) snapshot() State {
	s := State{
		Version:   c.version,
		Now:       c.now,
		TickCount: c.tickCount,
		City:      c.city,
		Country:   c.country,
		Timings:   c.timings,
		DayLabel:  c.dayLabel,
		ParseErr:  c.parseErr,
		Period:    c.period,
		Fasting:   c.fasting,
	}
	if c.schedule != nil {
		s.Schedule = *c.schedule
		s.HasSchedule = true
		s.NextPeriod, s.NextStart = prayer.NextPeriod(c.now, *c.schedule)
	}
	return s
}
