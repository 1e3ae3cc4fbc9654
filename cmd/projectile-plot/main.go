package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/projectile/config"
	"github.com/lixenwraith/projectile/plot"
)

type options struct {
	JSON   bool
	ASCII  bool
	Out    string
	Width  int
	Height int
}

func main() {
	cfg := config.Load()
	fs := flag.CommandLine
	cfg.RegisterFlags(fs)

	var opts options
	fs.BoolVar(&opts.JSON, "json", false, "print the summary as JSON")
	fs.BoolVar(&opts.ASCII, "ascii", false, "print a text chart of height over time")
	fs.StringVar(&opts.Out, "o", "", "write the trajectory graph to this file (.png, .svg, .pdf)")
	fs.IntVar(&opts.Width, "width", 70, "text chart width in columns")
	fs.IntVar(&opts.Height, "height", 12, "text chart height in rows")
	flag.Parse()

	if err := run(os.Stdout, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "projectile-plot: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *config.Config, opts options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	l := cfg.Launch()
	tr := l.Trajectory(cfg.TimeStep)
	summary := plot.Summarize(l, cfg.TimeStep, tr)

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
	} else {
		fmt.Fprintf(w, "Launch:   %.2f m/s at %.2f°\n", summary.Speed, summary.AngleDeg)
		fmt.Fprintf(w, "Samples:  %d every %gs\n", summary.Samples, summary.TimeStep)
		fmt.Fprintf(w, "Peak:     %.1fm at x=%.1fm (analytic %.2fm)\n", summary.Peak.Y, summary.Peak.X, summary.AnalyticMaxHeight)
		fmt.Fprintf(w, "Range:    %.1fm (analytic %.2fm)\n", summary.Range.X, summary.AnalyticRange)
		fmt.Fprintf(w, "Flight:   %.2fs (analytic %.2fs)\n", summary.FlightTime, summary.AnalyticFlightTime)
	}

	if opts.ASCII {
		fmt.Fprintln(w)
		fmt.Fprintln(w, plot.ASCII(tr, opts.Width, opts.Height))
	}

	if opts.Out != "" {
		if err := plot.Save(opts.Out, tr); err != nil {
			return err
		}
		if !opts.JSON {
			fmt.Fprintf(w, "Graph:    %s\n", opts.Out)
		}
	}
	return nil
}
