package display

import (
	"time"

	"github.com/julianstephens/adhan/internal/models"
	"github.com/julianstephens/adhan/internal/prayer"
)

// State is a snapshot of everything the display renders.
type State struct {
	// Version increases with every change so consumers can drop stale snapshots
	Version   uint64
	Now       time.Time
	TickCount int
	City      string
	Country   string

	Timings  models.Result[models.Timings]
	DayLabel models.Result[string]
	// ParseErr is set when the received timings could not be parsed
	ParseErr error

	Schedule    prayer.Schedule
	HasSchedule bool

	Period     models.Period
	Fasting    bool
	NextPeriod models.Period
	NextStart  time.Time
}

// Loading reports whether either fetch is still pending.
func (s State) Loading() bool {
	return s.Timings.Pending() || s.DayLabel.Pending()
}

func (s State) Status() string {
	return prayer.Status(s.Period, s.Loading())
}

func (s State) BackgroundColor() string {
	return prayer.BackgroundColor(s.Period)
}

// UntilNext returns the time left before the next period starts.
func (s State) UntilNext() time.Duration {
	if !s.HasSchedule || s.NextStart.IsZero() {
		return 0
	}
	return s.NextStart.Sub(s.Now)
}
