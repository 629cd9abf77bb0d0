package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/adhan/internal/constants"
	"github.com/julianstephens/adhan/internal/models"
	"github.com/julianstephens/adhan/internal/prayer"
)

type TimingsCmd struct {
	Timeout time.Duration `help:"How long to wait for the backend." default:"30s"`
}

func (c *TimingsCmd) Run(ctx *Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	timings, err := ctx.Client.FetchTimings(reqCtx, ctx.Config.City, ctx.Config.Country)
	if err != nil {
		return fmt.Errorf("failed to fetch timings: %w", err)
	}

	schedule, parseErr := prayer.ParseSchedule(timings, ctx.Clock.Now())

	ctx.printf("Prayer times for %s, %s:\n\n", ctx.Config.City, ctx.Config.Country)
	for _, p := range models.Periods {
		start := "--:--"
		if parseErr == nil {
			start = schedule.Start(p).Format(constants.TimeFormat)
		}
		ctx.printf("  %-8s %5s  %s\n", p, start, timings.Get(p))
	}

	if parseErr != nil {
		return fmt.Errorf("failed to parse timings: %w", parseErr)
	}
	return nil
}
