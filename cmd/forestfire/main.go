package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"forest-fire/internal/app"
	"forest-fire/internal/core"
	_ "forest-fire/internal/sims/forestfire"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim, err := factory(cfg.SimParams())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.TUI {
		err = runTerminal(ctx, sim, cfg)
	} else {
		err = app.RunText(ctx, os.Stdout, sim, app.TextOptions{
			Steps: cfg.Steps,
			TPS:   cfg.TPS,
			Clear: cfg.Clear,
		})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func runTerminal(ctx context.Context, sim core.Sim, cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	return app.New(sim, screen, cfg.TPS, cfg.Seed).Run(ctx)
}
