package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/julianstephens/adhan/internal/client"
	apperrors "github.com/julianstephens/adhan/internal/errors"
)

const timingsJSON = `{"Fajr":"05:30","Dhuhr":"12:30","Asr":"15:45","Maghrib":"18:20","Isha":"19:45"}`

type backend struct {
	timingsStatus int
	timingsBody   string
	dayStatus     int
	dayBody       string
}

func newTestContext(t *testing.T, b backend, now time.Time) (*Context, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/today":
			w.WriteHeader(b.timingsStatus)
			_, _ = w.Write([]byte(b.timingsBody))
		case "/api/ramadan/day":
			w.WriteHeader(b.dayStatus)
			_, _ = w.Write([]byte(b.dayBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	cfg := Config{BaseURL: srv.URL + "/api", City: "Toronto", Country: "Canada"}
	return &Context{
		Config: cfg,
		Client: client.New(client.Config{BaseURL: cfg.BaseURL}),
		Clock:  clockwork.NewFakeClockAt(now),
		Out:    out,
	}, out
}

func afternoon() time.Time {
	return time.Date(2026, time.March, 1, 14, 0, 0, 0, time.Local)
}

func TestNowCmd(t *testing.T) {
	ctx, out := newTestContext(t, backend{
		timingsStatus: http.StatusOK, timingsBody: timingsJSON,
		dayStatus: http.StatusOK, dayBody: "Ramadan 11",
	}, afternoon())

	cmd := &NowCmd{Timeout: 5 * time.Second}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Now (14:00): Dhuhr",
		"There is no god but Allah. Muhammad is the messenger of God. — current prayer: Dhuhr",
		"Fasting:    yes",
		"Next:       Asr at 15:45 (in 1:45:00)",
		"Background: #ffbb00",
		"Day:        Ramadan 11",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestNowCmdDayLabelFailure(t *testing.T) {
	ctx, out := newTestContext(t, backend{
		timingsStatus: http.StatusOK, timingsBody: timingsJSON,
		dayStatus: http.StatusInternalServerError,
	}, afternoon())

	if err := (&NowCmd{Timeout: 5 * time.Second}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Day:        unavailable") {
		t.Errorf("output = %q, want unavailable day label", out.String())
	}
}

func TestNowCmdErrors(t *testing.T) {
	tests := []struct {
		name    string
		b       backend
		wantErr error
	}{
		{
			name:    "timings fetch fails",
			b:       backend{timingsStatus: http.StatusBadGateway, dayStatus: http.StatusOK, dayBody: "Ramadan 11"},
			wantErr: apperrors.ErrNetwork,
		},
		{
			name: "timings unparseable",
			b: backend{
				timingsStatus: http.StatusOK,
				timingsBody:   `{"Fajr":"soon","Dhuhr":"12:30","Asr":"15:45","Maghrib":"18:20","Isha":"19:45"}`,
				dayStatus:     http.StatusOK, dayBody: "Ramadan 11",
			},
			wantErr: apperrors.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newTestContext(t, tt.b, afternoon())
			err := (&NowCmd{Timeout: 5 * time.Second}).Run(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output on error: %q", out.String())
			}
		})
	}
}

func TestTimingsCmd(t *testing.T) {
	ctx, out := newTestContext(t, backend{
		timingsStatus: http.StatusOK,
		timingsBody:   `{"Fajr":"05:30 (EST)","Dhuhr":"12:30","Asr":"3:45 PM","Maghrib":"18:20","Isha":"19:45"}`,
	}, afternoon())

	if err := (&TimingsCmd{Timeout: 5 * time.Second}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Prayer times for Toronto, Canada:",
		"Fajr     05:30  05:30 (EST)",
		"Asr      15:45  3:45 PM",
		"Isha     19:45  19:45",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestTimingsCmdParseFailure(t *testing.T) {
	ctx, out := newTestContext(t, backend{
		timingsStatus: http.StatusOK,
		timingsBody:   `{"Fajr":"05:30","Dhuhr":"","Asr":"15:45","Maghrib":"18:20","Isha":"19:45"}`,
	}, afternoon())

	err := (&TimingsCmd{Timeout: 5 * time.Second}).Run(ctx)
	if !errors.Is(err, apperrors.ErrFormat) {
		t.Fatalf("Run() error = %v, want ErrFormat", err)
	}
	if !strings.Contains(out.String(), "Dhuhr    --:--") {
		t.Errorf("raw timings should still print on parse failure:\n%s", out.String())
	}
}

func TestDayCmd(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{name: "label", status: http.StatusOK, body: "Ramadan 11", want: "Ramadan 11\n"},
		{name: "empty label", status: http.StatusOK, body: "", want: "\n"},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newTestContext(t, backend{dayStatus: tt.status, dayBody: tt.body}, afternoon())
			err := (&DayCmd{Timeout: 5 * time.Second}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrNetwork) {
					t.Errorf("error = %v, want ErrNetwork", err)
				}
				return
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestNewContextNormalizesBaseURL(t *testing.T) {
	ctx := NewContext(Config{BaseURL: "http://localhost:8080/api/"})
	if got := ctx.Client.BaseURL(); got != "http://localhost:8080/api" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", got)
	}
}
