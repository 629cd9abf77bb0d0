package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/julianstephens/adhan/internal/client"
	"github.com/julianstephens/adhan/internal/clock"
	"github.com/julianstephens/adhan/internal/display"
	"github.com/julianstephens/adhan/internal/logger"
)

// Config is the resolved global configuration shared by every command.
type Config struct {
	BaseURL string
	City    string
	Country string
	Debug   bool
}

type Context struct {
	Config Config
	Client *client.Client
	Clock  clockwork.Clock
	Out    io.Writer
}

func NewContext(cfg Config) *Context {
	return &Context{
		Config: cfg,
		Client: client.New(client.Config{BaseURL: cfg.BaseURL}),
		Clock:  clockwork.NewRealClock(),
		Out:    os.Stdout,
	}
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

// loadOnce runs a controller until both fetches finish and returns the
// resulting snapshot. The caller never sees the refresh tick.
func (c *Context) loadOnce(timeout time.Duration) (display.State, error) {
	sched, err := clock.New(c.Clock)
	if err != nil {
		return display.State{}, err
	}
	defer func() {
		if err := sched.Shutdown(); err != nil {
			logger.Warn("Scheduler shutdown failed", "error", err)
		}
	}()

	ctrl := display.New(c.Client, sched,
		display.WithClock(c.Clock),
		display.WithLocation(c.Config.City, c.Config.Country),
	)
	defer ctrl.Teardown()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := ctrl.Initialize(ctx); err != nil {
		return display.State{}, err
	}
	if err := ctrl.Wait(ctx); err != nil {
		return display.State{}, fmt.Errorf("timed out waiting for backend: %w", err)
	}
	return ctrl.State(), nil
}
