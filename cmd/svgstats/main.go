// svgstats aggregates SVG renderer conformance results into chart data.
//
// Usage:
//
//	svgstats          # all tests
//	svgstats --svg2   # only tests marked "(SVG 2)"
//
// Reads results.csv (one row per test, four renderer outcome columns),
// writes chart.json for barh and group_results.json for the site, then runs
// ./barh to draw site/images/chart.svg (chart-svg2.svg with --svg2). A
// missing barh binary is reported as a warning.
//
// Paths, renderer names and the denylist come from .svgstats.yaml; see
// internal/config. A run summary is printed to stdout:
//
//	terminal: styled output (default when stdout is a TTY)
//	llm:      plain text (default when piped)
//	json:     structured JSON (format: json in the config)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/svgstats/internal/barh"
	"github.com/dkoosis/svgstats/internal/config"
	"github.com/dkoosis/svgstats/internal/logger"
	"github.com/dkoosis/svgstats/internal/stats"
	"github.com/dkoosis/svgstats/pkg/mapper"
	"github.com/dkoosis/svgstats/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("svgstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	svg2 := fs.Bool("svg2", false, "Aggregate only tests whose document is marked (SVG 2)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "svgstats: unexpected argument %q\n", fs.Arg(0))
		fmt.Fprintf(stderr, "Usage: svgstats [--svg2]\n")
		return 2
	}

	cfg, cfgPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "svgstats: %v\n", err)
		return 2
	}

	log := logger.New(stderr, cfg.Debug)
	defer func() { _ = log.Sync() }()
	if cfgPath != "" {
		log.Debug("config loaded", zap.String("path", cfgPath))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := barh.New(cfg.BarhPath)
	runner.Stderr = stderr
	report, err := stats.Run(ctx, cfg, stats.Options{
		Subset:   *svg2,
		Renderer: runner,
		Logger:   log,
	})
	if err != nil {
		fmt.Fprintf(stderr, "svgstats: %v\n", err)
		return 1
	}

	patterns := mapper.FromStats(report, cfg.Renderers)
	output := selectRenderer(resolveFormat(cfg.Format, stdout), cfg.Theme, stdout).Render(patterns)
	fmt.Fprint(stdout, output)
	return 0
}

func selectRenderer(mode, themeName string, w io.Writer) render.Renderer {
	switch mode {
	case config.FormatJSON:
		return render.NewJSON()
	case config.FormatLLM:
		return render.NewLLM()
	default:
		theme := render.ThemeByName(themeName)
		// Honor NO_COLOR
		if os.Getenv("NO_COLOR") != "" {
			theme = render.MonoTheme()
		}
		width := 80
		if f, ok := w.(*os.File); ok {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
		return render.NewTerminal(theme, width)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return config.FormatTerminal
		}
	}
	return config.FormatLLM
}
