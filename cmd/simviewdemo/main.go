// Command simviewdemo drives the simview renderer three ways: offline
// PNG frame sequences, a live terminal view of the built-in demo world,
// and a watcher for a remote body feed.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/simview"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:          "simviewdemo",
		Short:        "physics body renderer demos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error); empty disables logging")

	root.AddCommand(newFramesCmd())
	root.AddCommand(newLiveCmd())
	root.AddCommand(newWatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "simviewdemo:", err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	if level == "" {
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("bad --log-level %q: %w", level, err)
	}
	simview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})))
	return nil
}

// parseSize parses "WxH" into positive pixel dimensions.
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad size %q, want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("bad size %q, want positive dimensions", s)
	}
	return width, height, nil
}

// parseOffset parses "X,Y" into a pixel offset.
func parseOffset(s string) (float64, float64, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("bad offset %q, want X,Y", s)
	}
	ox, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad offset %q: %w", s, err)
	}
	oy, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad offset %q: %w", s, err)
	}
	return ox, oy, nil
}
