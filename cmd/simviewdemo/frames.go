package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/simview"
	"github.com/gogpu/simview/internal/demoworld"
	"github.com/gogpu/simview/stage"
)

// displayRate is the simulated display refresh used for offline frames.
// It deliberately beats against the 60 Hz physics step so the saved
// sequence exercises sub-step interpolation.
const displayRate = 50

func newFramesCmd() *cobra.Command {
	var (
		frames     int
		size       string
		outDir     string
		stylesPath string
		debug      bool
		offset     string
		fontPath   string
		seed       int64
		bodies     int
	)

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "render the demo world offline to a PNG sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, err := parseSize(size)
			if err != nil {
				return err
			}
			ox, oy, err := parseOffset(offset)
			if err != nil {
				return err
			}

			opts := []simview.Option{
				simview.WithDebug(debug),
				simview.WithOffset(ox, oy),
			}
			if stylesPath != "" {
				styles, err := simview.LoadStyles(stylesPath)
				if err != nil {
					return err
				}
				opts = append(opts, simview.WithStyles(styles))
			}
			if fontPath != "" {
				source, err := text.NewFontSourceFromFile(fontPath)
				if err != nil {
					return err
				}
				opts = append(opts, simview.WithMetaFace(source.Face(13)))
			} else {
				opts = append(opts, simview.WithMeta(false))
			}

			target := stage.NewImageTarget(width, height)
			opts = append(opts, simview.WithTarget(target))

			r, err := simview.New(width, height, opts...)
			if err != nil {
				return err
			}

			world := demoworld.New(float64(width), float64(height))
			world.Seed(bodies, seed)

			views := make([]simview.BodyView, 0, world.Len())
			for _, b := range world.Bodies() {
				v, err := r.CreateView(b.Geometry)
				if err != nil {
					return err
				}
				views = append(views, simview.BodyView{View: v})
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			// Synthetic clock: offline rendering must not depend on
			// wall time.
			now := time.Unix(0, 0)
			world.Tick(now)
			for i := 0; i < frames; i++ {
				now = now.Add(time.Second / displayRate)
				steps, fraction := world.Tick(now)
				for j, b := range world.Bodies() {
					views[j].State = b.State
				}
				// World velocities are per second, so the update formula
				// wants elapsed seconds within the step, not the bare
				// fraction.
				meta := simview.Meta{
					FPS:           displayRate,
					IPF:           steps,
					Interpolation: fraction * world.Step().Seconds(),
				}
				if err := r.Render(views, meta); err != nil {
					return err
				}
				name := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", i))
				if err := target.SavePNG(name); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", frames, outDir)
			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 120, "number of frames to render")
	cmd.Flags().StringVar(&size, "size", "800x600", "canvas size WxH")
	cmd.Flags().StringVar(&outDir, "out", "frames", "output directory")
	cmd.Flags().StringVar(&stylesPath, "styles", "", "style table yaml file")
	cmd.Flags().BoolVar(&debug, "debug", false, "draw bounding boxes")
	cmd.Flags().StringVar(&offset, "offset", "0,0", "pixel offset X,Y")
	cmd.Flags().StringVar(&fontPath, "font", "", "font file for the FPS/IPF overlay")
	cmd.Flags().Int64Var(&seed, "seed", 1, "demo world random seed")
	cmd.Flags().IntVar(&bodies, "bodies", 10, "number of demo bodies")

	return cmd
}
