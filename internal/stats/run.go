package stats

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dkoosis/svgstats/internal/barh"
	"github.com/dkoosis/svgstats/internal/config"
	"github.com/dkoosis/svgstats/internal/results"
	"github.com/dkoosis/svgstats/internal/subset"
	"github.com/dkoosis/svgstats/pkg/chart"
)

// ChartRenderer turns a written chart descriptor into an image.
type ChartRenderer interface {
	Render(ctx context.Context, chartPath, imagePath string) error
}

// Options controls one Run.
type Options struct {
	// Subset restricts the tally to documents carrying the SVG 2 marker.
	Subset bool
	// Renderer draws the chart image. Nil skips the image step.
	Renderer ChartRenderer
	// Logger receives diagnostics. Nil means zap.NewNop.
	Logger *zap.Logger
}

// Report describes what a Run produced.
type Report struct {
	Tally      *Tally
	Subset     bool
	FilterSize int
	Rows       int
	ChartPath  string
	GroupsPath string
	ImagePath  string
	// ImageWritten is false when the renderer was absent or not configured.
	ImageWritten bool
}

// Run loads results, aggregates them, writes the chart and group documents
// and renders the chart image. A missing chart renderer is logged and
// tolerated; every other failure is returned.
func Run(ctx context.Context, cfg config.Config, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	report := &Report{
		Subset:     opts.Subset,
		ChartPath:  cfg.ChartPath,
		GroupsPath: cfg.GroupsPath,
		ImagePath:  cfg.ImageFor(opts.Subset),
	}

	var filter Filter
	if opts.Subset {
		set, err := subset.Scan(cfg.TestsDir, subset.Options{
			Marker:    cfg.Marker,
			Extension: cfg.Extension,
			Deny:      cfg.DenySet(),
		})
		if err != nil {
			return nil, err
		}
		log.Debug("subset filter loaded", zap.String("dir", cfg.TestsDir), zap.Int("documents", set.Len()))
		report.FilterSize = set.Len()
		filter = set
	}

	rows, err := results.ReadFile(cfg.ResultsPath)
	if err != nil {
		return nil, err
	}
	report.Rows = len(rows)
	log.Debug("results read", zap.String("path", cfg.ResultsPath), zap.Int("rows", len(rows)))

	tally := Aggregate(rows, filter)
	report.Tally = tally
	log.Debug("results aggregated",
		zap.Int("considered", tally.Total),
		zap.Int("unknown", tally.Skipped),
		zap.Int("filtered", tally.Filtered),
		zap.Int("groups", tally.Groups.Len()),
	)

	doc, err := ChartDocument(cfg, tally)
	if err != nil {
		return nil, err
	}
	if err := chart.WriteFile(cfg.ChartPath, doc); err != nil {
		return nil, err
	}
	if err := chart.WriteFile(cfg.GroupsPath, GroupsDocument(cfg, tally)); err != nil {
		return nil, err
	}
	log.Debug("documents written", zap.String("chart", cfg.ChartPath), zap.String("groups", cfg.GroupsPath))

	if opts.Renderer == nil || report.ImagePath == "" {
		return report, nil
	}
	if dir := filepath.Dir(report.ImagePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	err = opts.Renderer.Render(ctx, cfg.ChartPath, report.ImagePath)
	switch {
	case errors.Is(err, barh.ErrNotFound):
		log.Warn("chart image not rendered",
			zap.String("barh", cfg.BarhPath),
			zap.String("hint", barh.InstallHint),
		)
	case err != nil:
		return nil, fmt.Errorf("rendering chart: %w", err)
	default:
		report.ImageWritten = true
		log.Debug("chart rendered", zap.String("image", report.ImagePath))
	}
	return report, nil
}
