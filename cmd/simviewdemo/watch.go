package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/simview/feed"
)

// feedSource feeds the TUI from a remote body stream.
type feedSource struct {
	client *feed.Client

	lastTick time.Time
	fpsEMA   float64
}

func (s *feedSource) Step(now time.Time) tuiFrame {
	bodies := s.client.Snapshot()
	out := make([]tuiBody, 0, len(bodies))
	for _, b := range bodies {
		if !b.Created {
			// Synced but not announced yet: no geometry to draw.
			continue
		}
		out = append(out, tuiBody{Geometry: b.Geometry, State: b.State})
	}

	fps, ipf, ok := s.client.Meta()
	if !ok {
		// No server metrics yet: show the local refresh rate.
		fps = s.localFPS(now)
	}
	return tuiFrame{
		Bodies:   out,
		FPS:      fps,
		IPF:      ipf,
		Fraction: s.client.Fraction(now),
	}
}

func (s *feedSource) localFPS(now time.Time) float64 {
	if !s.lastTick.IsZero() {
		if dt := now.Sub(s.lastTick).Seconds(); dt > 0 {
			inst := 1 / dt
			if s.fpsEMA == 0 {
				s.fpsEMA = inst
			} else {
				s.fpsEMA += 0.1 * (inst - s.fpsEMA)
			}
		}
	}
	s.lastTick = now
	return s.fpsEMA
}

func (s *feedSource) Close() error { return s.client.Close() }

func newWatchCmd() *cobra.Command {
	var (
		url            string
		worldW, worldH float64
		dialTimeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "render a remote body feed in a terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return fmt.Errorf("--url is required")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), dialTimeout)
			defer cancel()
			client, err := feed.Dial(ctx, url)
			if err != nil {
				return err
			}
			src := &feedSource{client: client}
			m := newTUIModel("simview watch "+url, src, worldW, worldH)
			if err := runTUI(m); err != nil {
				return err
			}
			if err := client.Err(); err != nil {
				return fmt.Errorf("feed ended: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "websocket feed url (ws://host/path)")
	cmd.Flags().Float64Var(&worldW, "world-width", 320, "world extent fitted to the canvas")
	cmd.Flags().Float64Var(&worldH, "world-height", 200, "world extent fitted to the canvas")
	cmd.Flags().DurationVar(&dialTimeout, "dial-timeout", 5*time.Second, "connect timeout")

	return cmd
}
