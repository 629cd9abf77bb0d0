package prayer

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/adhan/internal/constants"
	"github.com/julianstephens/adhan/internal/models"
)

func at(hour, minute int) time.Time {
	return time.Date(today.Year(), today.Month(), today.Day(), hour, minute, 0, 0, time.Local)
}

func mustSchedule(t *testing.T) Schedule {
	t.Helper()
	s, err := ParseSchedule(sampleTimings(), today)
	if err != nil {
		t.Fatalf("ParseSchedule() error = %v", err)
	}
	return s
}

func TestCurrentPeriod(t *testing.T) {
	s := mustSchedule(t)

	tests := []struct {
		name        string
		now         time.Time
		wantPeriod  models.Period
		wantFasting bool
	}{
		{name: "before fajr wraps to isha", now: at(3, 0), wantPeriod: models.PeriodIsha, wantFasting: false},
		{name: "fajr start inclusive", now: at(5, 0), wantPeriod: models.PeriodFajr, wantFasting: true},
		{name: "morning", now: at(9, 0), wantPeriod: models.PeriodFajr, wantFasting: true},
		{name: "dhuhr", now: at(13, 0), wantPeriod: models.PeriodDhuhr, wantFasting: true},
		{name: "asr", now: at(16, 0), wantPeriod: models.PeriodAsr, wantFasting: true},
		{name: "one minute before maghrib", now: at(18, 59), wantPeriod: models.PeriodAsr, wantFasting: true},
		{name: "maghrib start exclusive for fasting", now: at(19, 0), wantPeriod: models.PeriodMaghrib, wantFasting: false},
		{name: "isha", now: at(21, 0), wantPeriod: models.PeriodIsha, wantFasting: false},
		{name: "just before midnight", now: at(23, 59), wantPeriod: models.PeriodIsha, wantFasting: false},
		{name: "after tomorrow's fajr still isha by default", now: s.FajrTomorrow.Add(time.Hour), wantPeriod: models.PeriodIsha, wantFasting: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentPeriod(tt.now, s); got != tt.wantPeriod {
				t.Errorf("CurrentPeriod(%s) = %s, want %s", tt.now.Format("15:04"), got, tt.wantPeriod)
			}
			if got := IsFasting(tt.now, s); got != tt.wantFasting {
				t.Errorf("IsFasting(%s) = %v, want %v", tt.now.Format("15:04"), got, tt.wantFasting)
			}
		})
	}
}

func TestPeriodFunctionsArePure(t *testing.T) {
	s := mustSchedule(t)

	for minute := 0; minute < 24*60; minute += 7 {
		now := at(minute/60, minute%60)
		p1, p2 := CurrentPeriod(now, s), CurrentPeriod(now, s)
		f1, f2 := IsFasting(now, s), IsFasting(now, s)
		if p1 != p2 || f1 != f2 {
			t.Fatalf("non-deterministic result at %s", now.Format("15:04"))
		}
	}
}

func TestNextPeriod(t *testing.T) {
	s := mustSchedule(t)

	tests := []struct {
		name      string
		now       time.Time
		want      models.Period
		wantStart time.Time
	}{
		{name: "before fajr", now: at(3, 0), want: models.PeriodFajr, wantStart: at(5, 0)},
		{name: "at fajr", now: at(5, 0), want: models.PeriodDhuhr, wantStart: at(12, 30)},
		{name: "afternoon", now: at(17, 0), want: models.PeriodMaghrib, wantStart: at(19, 0)},
		{name: "after isha", now: at(22, 0), want: models.PeriodFajr, wantStart: s.FajrTomorrow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, start := NextPeriod(tt.now, s)
			if p != tt.want || !start.Equal(tt.wantStart) {
				t.Errorf("NextPeriod() = %s at %v, want %s at %v", p, start, tt.want, tt.wantStart)
			}
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	tests := []struct {
		period models.Period
		want   string
	}{
		{models.PeriodFajr, "#5f5cfa"},
		{models.PeriodDhuhr, "#ffbb00"},
		{models.PeriodAsr, "#eb4640"},
		{models.PeriodMaghrib, "#6bff4d"},
		{models.PeriodIsha, "#000000"},
		{models.PeriodNone, "#000000"},
		{models.Period("Sunrise"), "#000000"},
	}

	for _, tt := range tests {
		if got := BackgroundColor(tt.period); got != tt.want {
			t.Errorf("BackgroundColor(%q) = %s, want %s", string(tt.period), got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		period  models.Period
		loading bool
		want    string
	}{
		{
			name:    "loading wins over period",
			period:  models.PeriodDhuhr,
			loading: true,
			want:    "Loading...",
		},
		{
			name:   "dhuhr",
			period: models.PeriodDhuhr,
			want:   "There is no god but Allah. Muhammad is the messenger of God. — current prayer: Dhuhr",
		},
		{
			name:   "isha",
			period: models.PeriodIsha,
			want:   "To Allah, we belong, and to him, we will return. — current prayer: Isha",
		},
		{
			name:   "undefined period",
			period: models.PeriodNone,
			want:   "Awaiting the next prayer. — current prayer: —",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.period, tt.loading); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}

	for _, p := range models.Periods {
		if !strings.HasSuffix(Status(p, false), constants.StatusSeparator+string(p)) {
			t.Errorf("Status(%s) missing period suffix", p)
		}
	}
}
