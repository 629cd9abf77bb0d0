package models

import "github.com/julianstephens/adhan/internal/constants"

type Period string

const (
	PeriodNone    Period = ""
	PeriodFajr    Period = "Fajr"
	PeriodDhuhr   Period = "Dhuhr"
	PeriodAsr     Period = "Asr"
	PeriodMaghrib Period = "Maghrib"
	PeriodIsha    Period = "Isha"
)

// Periods lists the prayer periods in daily order.
var Periods = [...]Period{PeriodFajr, PeriodDhuhr, PeriodAsr, PeriodMaghrib, PeriodIsha}

func (p Period) String() string {
	if p == PeriodNone {
		return constants.NoPeriodLabel
	}
	return string(p)
}

// Index returns the position of p in Periods, or -1.
func (p Period) Index() int {
	for i, q := range Periods {
		if q == p {
			return i
		}
	}
	return -1
}

// Timings holds one day's prayer start times as returned by the backend.
// Values are free-form but expected to contain an HH:MM component.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Get returns the raw time string for p.
func (t Timings) Get(p Period) string {
	switch p {
	case PeriodFajr:
		return t.Fajr
	case PeriodDhuhr:
		return t.Dhuhr
	case PeriodAsr:
		return t.Asr
	case PeriodMaghrib:
		return t.Maghrib
	case PeriodIsha:
		return t.Isha
	default:
		return ""
	}
}
