// Command layoutdump prints the computed recipe screen layout without
// opening a window. By default it sweeps the scroll offset and prints the
// header parameters per step; with -json it prints the whole layout tree
// for a single offset.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/ytget/cooking/internal/config"
	"github.com/ytget/cooking/internal/layout"
	"github.com/ytget/cooking/internal/logging"
	"github.com/ytget/cooking/internal/parallax"
)

// Default viewport, a typical phone in portrait
const (
	DefaultWidth  = 400
	DefaultHeight = 800
	DefaultSteps  = 12
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("layoutdump failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("layoutdump", flag.ContinueOnError)
	configFile := fs.String("config", os.Getenv(config.EnvConfigPath), "Path to a config TOML file")
	width := fs.Float64("width", DefaultWidth, "Viewport width")
	height := fs.Float64("height", DefaultHeight, "Viewport height")
	inset := fs.Float64("inset", 0, "Status bar inset when the config does not pin one")
	offset := fs.Float64("offset", 0, "Scroll offset for -json")
	steps := fs.Int("steps", DefaultSteps, "Number of sweep steps")
	asJSON := fs.Bool("json", false, "Print the layout tree as JSON")
	servings := fs.Int("servings", -1, "Serving count, defaults to the configured initial count")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel())

	state := layout.DefaultState(float32(*width), float32(*height))
	state.Metrics = cfg.Metrics(float32(*inset))
	state.Style = cfg.HeaderStyle()
	state.Servings = cfg.Serving.Initial
	if *servings >= 0 {
		state.Servings = *servings
	}

	slog.Debug("layout metrics",
		"expanded", state.Metrics.ExpandedHeight,
		"collapsed", state.Metrics.CollapsedHeight,
		"inset", state.Metrics.TopInset,
		"max_offset", state.Metrics.MaxOffset())

	if *asJSON {
		return writeTree(out, state.WithScroll(float32(*offset)))
	}
	return writeSweep(out, state, *steps)
}

func writeTree(out io.Writer, s layout.State) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(layout.Render(s)); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

// writeSweep prints one row per offset from 0 to a step past the maximum
func writeSweep(out io.Writer, s layout.State, steps int) error {
	if steps < 1 {
		steps = 1
	}
	maxOffset := s.Metrics.MaxOffset()
	stepSize := maxOffset / float32(steps)
	if stepSize <= 0 {
		stepSize = 1
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "offset\tclamped\tprogress\ttranslate\topacity\tpadding\tscale\televation\t")
	for i := 0; i <= steps+1; i++ {
		raw := float32(i) * stepSize
		st := parallax.Compute(raw, s.Metrics)
		p := parallax.ComputeHeader(st, s.Metrics, s.Style)
		fmt.Fprintf(tw, "%.1f\t%.1f\t%.3f\t%.1f\t%.3f\t%.1f\t%.3f\t%.0f\t\n",
			raw, st.ClampedOffset, p.Progress, p.TranslateY, p.ImageOpacity, p.TitlePadding, p.TitleScale, p.Elevation)
	}
	return tw.Flush()
}
