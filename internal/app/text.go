package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"forest-fire/internal/core"
)

// ErrNoText is returned when a sim cannot render itself as text.
var ErrNoText = errors.New("app: sim does not render text")

const clearScreen = "\033[H\033[2J"

// TextOptions controls the plain-text frame loop.
type TextOptions struct {
	Steps int
	// TPS paces frames; zero or less prints as fast as possible.
	TPS   int
	Clear bool
}

// RunText prints opts.Steps frames, stepping the sim after each one.
func RunText(ctx context.Context, w io.Writer, sim core.Sim, opts TextOptions) error {
	r, ok := sim.(core.TextRenderer)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoText, sim.Name())
	}
	var pacer *core.FixedStep
	if opts.TPS > 0 {
		pacer = core.NewFixedStep(opts.TPS)
	}
	for i := 0; i < opts.Steps; i++ {
		if pacer != nil {
			if err := pacer.Wait(ctx); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Clear {
			if _, err := io.WriteString(w, clearScreen); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, r.Render()); err != nil {
			return err
		}
		sim.Step()
	}
	return nil
}
