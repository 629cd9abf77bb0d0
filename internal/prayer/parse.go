// Package prayer holds the pure time logic behind the display: parsing
// backend time strings and classifying an instant into a prayer period.
package prayer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/julianstephens/adhan/internal/errors"
	"github.com/julianstephens/adhan/internal/models"
)

var (
	clockPattern    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	meridiemPattern = regexp.MustCompile(`(?i)\b(am|pm)\b`)
)

// ParseTime extracts the first H:MM or HH:MM in raw and places it on the
// calendar day of today shifted by dayOffset days, in today's location.
// A standalone am/pm token anywhere in raw converts the hour to 24h.
func ParseTime(raw string, today time.Time, dayOffset int) (time.Time, error) {
	if raw == "" {
		return time.Time{}, &apperrors.FormatError{Reason: "empty time string"}
	}

	m := clockPattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, &apperrors.FormatError{Input: raw, Reason: "no HH:MM time found"}
	}

	// Both groups are all digits, so Atoi cannot fail.
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	if mm := meridiemPattern.FindStringSubmatch(raw); mm != nil {
		switch strings.ToLower(mm[1]) {
		case "pm":
			if hours < 12 {
				hours += 12
			}
		case "am":
			if hours == 12 {
				hours = 0
			}
		}
	}

	return time.Date(today.Year(), today.Month(), today.Day()+dayOffset, hours, minutes, 0, 0, today.Location()), nil
}

// Schedule is one day's parsed period starts.
type Schedule struct {
	// Day is midnight of the calendar day the starts were parsed for
	Day          time.Time
	Starts       [len(models.Periods)]time.Time
	FajrTomorrow time.Time
}

// Start returns the start of p, or the zero time for PeriodNone.
func (s Schedule) Start(p models.Period) time.Time {
	i := p.Index()
	if i < 0 {
		return time.Time{}
	}
	return s.Starts[i]
}

// End returns the start of the period after p, wrapping to tomorrow's Fajr
// after Isha.
func (s Schedule) End(p models.Period) time.Time {
	i := p.Index()
	switch {
	case i < 0:
		return time.Time{}
	case i == len(s.Starts)-1:
		return s.FajrTomorrow
	default:
		return s.Starts[i+1]
	}
}

// SameDay reports whether t falls on the calendar day the schedule covers.
func (s Schedule) SameDay(t time.Time) bool {
	y1, m1, d1 := s.Day.Date()
	y2, m2, d2 := t.In(s.Day.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ParseSchedule parses all five timings for the day of today. Parsing stops
// at the first malformed field and no partial schedule is returned.
func ParseSchedule(t models.Timings, today time.Time) (Schedule, error) {
	var s Schedule
	for i, p := range models.Periods {
		start, err := ParseTime(t.Get(p), today, 0)
		if err != nil {
			return Schedule{}, fmt.Errorf("parse %s: %w", p, err)
		}
		s.Starts[i] = start
	}

	fajrTomorrow, err := ParseTime(t.Fajr, today, 1)
	if err != nil {
		return Schedule{}, fmt.Errorf("parse %s: %w", models.PeriodFajr, err)
	}
	s.FajrTomorrow = fajrTomorrow
	s.Day = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	return s, nil
}
