package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/simview/internal/demoworld"
)

// worldSource feeds the TUI from the built-in demo world.
type worldSource struct {
	world *demoworld.World
}

func (s *worldSource) Step(now time.Time) tuiFrame {
	steps, fraction := s.world.Tick(now)
	bodies := s.world.Bodies()
	out := make([]tuiBody, len(bodies))
	for i, b := range bodies {
		out[i] = tuiBody{Geometry: b.Geometry, State: b.State}
	}
	return tuiFrame{
		Bodies: out,
		FPS:    s.world.FPS(now),
		IPF:    steps,
		// World velocities are per second: interpolate by the elapsed
		// seconds within the step.
		Fraction: fraction * s.world.Step().Seconds(),
	}
}

func (s *worldSource) Close() error { return nil }

func newLiveCmd() *cobra.Command {
	var (
		seed   int64
		bodies int
	)

	cmd := &cobra.Command{
		Use:   "live",
		Short: "run the demo world in a terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			const worldW, worldH = 320, 200
			world := demoworld.New(worldW, worldH)
			world.Seed(bodies, seed)
			m := newTUIModel("simview live", &worldSource{world: world}, worldW, worldH)
			return runTUI(m)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "demo world random seed")
	cmd.Flags().IntVar(&bodies, "bodies", 8, "number of demo bodies")

	return cmd
}
