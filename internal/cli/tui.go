package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/adhan/internal/clock"
	"github.com/julianstephens/adhan/internal/display"
	"github.com/julianstephens/adhan/internal/logger"
	"github.com/julianstephens/adhan/internal/tui"
)

type TuiCmd struct {
	Ask bool `help:"Prompt for city and country before starting."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	city, country := ctx.Config.City, ctx.Config.Country
	if c.Ask {
		if err := tui.NewLocationForm(&city, &country).Run(); err != nil {
			return fmt.Errorf("location prompt: %w", err)
		}
	}

	sched, err := clock.New(ctx.Clock)
	if err != nil {
		return err
	}
	defer func() {
		if err := sched.Shutdown(); err != nil {
			logger.Warn("Scheduler shutdown failed", "error", err)
		}
	}()

	// p is assigned before Initialize, which starts every goroutine that
	// can reach the callback.
	var p *tea.Program
	ctrl := display.New(ctx.Client, sched,
		display.WithClock(ctx.Clock),
		display.WithLocation(city, country),
		display.WithOnChange(func(s display.State) {
			p.Send(tui.StateMsg(s))
		}),
	)
	defer ctrl.Teardown()

	p = tea.NewProgram(
		tui.NewModel(ctrl.State(), tui.WithOnQuit(ctrl.Teardown), tui.WithDebug(ctx.Config.Debug)),
		tea.WithAltScreen(),
	)

	if err := ctrl.Initialize(context.Background()); err != nil {
		return err
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
