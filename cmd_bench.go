package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/iburimskiy/ambient-field/internal/field"
	"github.com/iburimskiy/ambient-field/internal/render"
)

var benchOpts struct {
	frames int
	width  int
	height int
	csv    string
	noGrid bool
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the engine headlessly and report per-frame cost",
	Long: `Simulates frames against a counting surface while a virtual pointer
sweeps across the viewport. Per-frame stats can be written as CSV.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntVar(&benchOpts.frames, "frames", 600, "frames to simulate")
	f.IntVar(&benchOpts.width, "width", 0, "viewport width (0 = window width from config)")
	f.IntVar(&benchOpts.height, "height", 0, "viewport height (0 = window height from config)")
	f.StringVar(&benchOpts.csv, "csv", "", "write per-frame stats to this CSV file")
	f.BoolVar(&benchOpts.noGrid, "no-grid", false, "compare every pair instead of using the spatial index")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	o := benchOpts
	if o.frames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", o.frames)
	}
	w, h := viewportSize(cfg, o.width, o.height)

	params := cfg.Params()
	if o.noGrid {
		params.SpatialIndex = false
	}
	e := field.New(
		field.WithParams(params),
		field.WithRand(newRand(cfg)),
		field.WithDark(cfg.Theme.Resolve()),
	)
	defer e.Close()
	e.SetViewport(float64(w), float64(h))

	var surface render.Counter
	records := make([]field.FrameStats, 0, o.frames)
	edges := make([]float64, 0, o.frames)

	start := time.Now()
	for i := 0; i < o.frames; i++ {
		phase := float64(i) / float64(o.frames) * 2 * math.Pi
		e.SetPointer(float64(w)/2*(1+math.Sin(phase)), float64(h)/2)

		st := e.Tick(&surface)
		records = append(records, st)
		edges = append(edges, float64(st.Edges))
	}
	elapsed := time.Since(start)

	mean, std := stat.MeanStdDev(edges, nil)
	logger.Info("bench finished",
		zap.Int("frames", o.frames),
		zap.Int("points", len(e.Points())),
		zap.Bool("spatial_index", params.SpatialIndex),
		zap.Duration("elapsed", elapsed),
		zap.Duration("per_frame", elapsed/time.Duration(o.frames)),
		zap.Float64("edges_mean", mean),
		zap.Float64("edges_stddev", std),
		zap.Int("lines_drawn", surface.Lines),
		zap.Int("discs_drawn", surface.Discs),
	)

	if o.csv == "" {
		return nil
	}
	f, err := os.Create(o.csv)
	if err != nil {
		return fmt.Errorf("create %s: %w", o.csv, err)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", o.csv, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", o.csv, err)
	}
	logger.Info("frame stats written", zap.String("path", o.csv), zap.Int("rows", len(records)))
	return nil
}
