package timings

import (
	"testing"
	"time"

	"github.com/julianstephens/adhan/internal/display"
	"github.com/julianstephens/adhan/internal/models"
	"github.com/julianstephens/adhan/internal/prayer"
)

func TestRows(t *testing.T) {
	timings := models.Timings{Fajr: "5:00 am", Dhuhr: "12:30 pm", Asr: "4:00 pm", Maghrib: "7:00 pm", Isha: "8:30 pm"}
	today := time.Date(2026, time.March, 1, 13, 0, 0, 0, time.Local)

	pending := Rows(display.State{Timings: models.Ok(timings)})
	if len(pending) != 5 || pending[0][2] != "--:--" {
		t.Errorf("rows without schedule = %v", pending)
	}

	s, err := prayer.ParseSchedule(timings, today)
	if err != nil {
		t.Fatalf("ParseSchedule() error = %v", err)
	}
	rows := Rows(display.State{Timings: models.Ok(timings), Schedule: s, HasSchedule: true})

	want := [][3]string{
		{"Fajr", "5:00 am", "05:00"},
		{"Dhuhr", "12:30 pm", "12:30"},
		{"Asr", "4:00 pm", "16:00"},
		{"Maghrib", "7:00 pm", "19:00"},
		{"Isha", "8:30 pm", "20:30"},
	}
	for i, w := range want {
		for j := range w {
			if rows[i][j] != w[j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, rows[i][j], w[j])
			}
		}
	}
}
