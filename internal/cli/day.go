package cli

import (
	"context"
	"fmt"
	"time"
)

type DayCmd struct {
	Timeout time.Duration `help:"How long to wait for the backend." default:"30s"`
}

func (c *DayCmd) Run(ctx *Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	label, err := ctx.Client.FetchDayLabel(reqCtx, ctx.Config.City, ctx.Config.Country)
	if err != nil {
		return fmt.Errorf("failed to fetch day label: %w", err)
	}

	ctx.printf("%s\n", label)
	return nil
}
