package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/adhan/internal/constants"
	"github.com/julianstephens/adhan/internal/tui/components/now"
)

type NowCmd struct {
	Timeout time.Duration `help:"How long to wait for the backend." default:"30s"`
}

func (c *NowCmd) Run(ctx *Context) error {
	s, err := ctx.loadOnce(c.Timeout)
	if err != nil {
		return err
	}
	if s.Timings.Err != nil {
		return fmt.Errorf("failed to fetch timings: %w", s.Timings.Err)
	}
	if s.ParseErr != nil {
		return fmt.Errorf("failed to parse timings: %w", s.ParseErr)
	}

	ctx.printf("Now (%s): %s\n\n", s.Now.Format(constants.TimeFormat), s.Period)
	ctx.printf("%s\n\n", s.Status())

	fasting := "no"
	if s.Fasting {
		fasting = "yes"
	}
	ctx.printf("Fasting:    %s\n", fasting)
	ctx.printf("Next:       %s at %s (in %s)\n", s.NextPeriod, s.NextStart.Format(constants.TimeFormat), now.FormatCountdown(s.UntilNext()))
	ctx.printf("Background: %s\n", s.BackgroundColor())

	if s.DayLabel.Err != nil {
		ctx.printf("Day:        unavailable (%v)\n", s.DayLabel.Err)
	} else if label := strings.TrimSpace(s.DayLabel.Value); label != "" {
		ctx.printf("Day:        %s\n", label)
	}
	return nil
}
