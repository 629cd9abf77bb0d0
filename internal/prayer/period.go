package prayer

import (
	"time"

	"github.com/julianstephens/adhan/internal/constants"
	"github.com/julianstephens/adhan/internal/models"
)

// CurrentPeriod returns the period whose start <= now < next start. Before
// today's Fajr no period qualifies and the result is Isha, the overnight
// period carried over from yesterday.
func CurrentPeriod(now time.Time, s Schedule) models.Period {
	for i, p := range models.Periods {
		if !now.Before(s.Starts[i]) && now.Before(s.End(p)) {
			return p
		}
	}
	return models.PeriodIsha
}

// IsFasting reports whether now is inside [Fajr, Maghrib).
func IsFasting(now time.Time, s Schedule) bool {
	return !now.Before(s.Start(models.PeriodFajr)) && now.Before(s.Start(models.PeriodMaghrib))
}

// NextPeriod returns the first period starting strictly after now, falling
// back to tomorrow's Fajr once Isha has begun.
func NextPeriod(now time.Time, s Schedule) (models.Period, time.Time) {
	for i, p := range models.Periods {
		if s.Starts[i].After(now) {
			return p, s.Starts[i]
		}
	}
	return models.PeriodFajr, s.FajrTomorrow
}

func BackgroundColor(p models.Period) string {
	switch p {
	case models.PeriodFajr:
		return constants.ColorFajr
	case models.PeriodDhuhr:
		return constants.ColorDhuhr
	case models.PeriodAsr:
		return constants.ColorAsr
	case models.PeriodMaghrib:
		return constants.ColorMaghrib
	default:
		return constants.ColorDefault
	}
}

func Message(p models.Period) string {
	switch p {
	case models.PeriodFajr:
		return constants.MessageFajr
	case models.PeriodDhuhr:
		return constants.MessageDhuhr
	case models.PeriodAsr:
		return constants.MessageAsr
	case models.PeriodMaghrib:
		return constants.MessageMaghrib
	case models.PeriodIsha:
		return constants.MessageIsha
	default:
		return constants.MessageDefault
	}
}

// Status renders the status line. While anything is loading it is the
// loading literal regardless of the period.
func Status(p models.Period, loading bool) string {
	if loading {
		return constants.LoadingStatus
	}
	return Message(p) + constants.StatusSeparator + p.String()
}
