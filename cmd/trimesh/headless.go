package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/trimesh/internal/analysis"
	"github.com/san-kum/trimesh/internal/config"
	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/experiment"
	"github.com/san-kum/trimesh/internal/export"
	"github.com/san-kum/trimesh/internal/metrics"
)

func runExperiment(cmd *cobra.Command, history int) (*config.Config, *experiment.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	duration, _ := cmd.Flags().GetFloat64("time")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := experiment.New(cfg, duration, history).Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return cfg, res, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, res, err := runExperiment(cmd, metrics.DefaultHistory)
	if err != nil {
		return err
	}
	s, degenerate := res.Sim, res.Degenerate
	fmt.Printf("simulated %.2fs (%d steps, seed %d) in %v\n", s.Time(), s.Steps(), cfg.Seed, time.Since(start).Round(time.Millisecond))
	if degenerate > 0 {
		fmt.Printf("warning: %d step(s) produced degenerate triangles\n", degenerate)
	}

	opts := export.DefaultSVGOptions()
	opts.Scale = scale
	if err := export.SaveSVG(outFile, s, opts); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	fmt.Printf("wrote %s (%d points, %d triangles)\n", outFile, len(s.Points()), len(s.Triangles()))

	if jsonFile != "" {
		if err := export.SaveJSON(jsonFile, s); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		fmt.Printf("wrote %s\n", jsonFile)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, res, err := runExperiment(cmd, 0)
	if err != nil {
		return err
	}
	s, rec, degenerate := res.Sim, res.Recorder, res.Degenerate

	fmt.Println(headingStyle.Render("mesh statistics"))
	fmt.Printf("points: %d  steps: %d  time: %.2fs  seed: %d\n\n", len(s.Points()), s.Steps(), s.Time(), cfg.Seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tFINAL\tMEAN\tSTDDEV\tMIN\tMAX")
	for _, m := range rec.Metrics() {
		series := rec.Series(m.Name())
		if len(series) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			m.Name(), m.Value(), stat.Mean(series, nil), stdDev(series), floats.Min(series), floats.Max(series))
	}
	w.Flush()
	fmt.Printf("\ndegenerate steps: %d\n", degenerate)
	if s.Dropped() > 0 {
		fmt.Printf("dropped lag: %.4fs\n", s.Dropped())
	}

	if counts := rec.Series("triangles"); len(counts) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(counts,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("triangle count")))
	}
	return nil
}

func stdDev(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.StdDev(x, nil)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, res, err := runExperiment(cmd, 0)
	if err != nil {
		return err
	}

	churn := res.Recorder.Series("churn")
	if len(churn) < 2 {
		return fmt.Errorf("not enough steps to analyze (%d)", len(churn))
	}
	// the first sample has no previous mesh to compare against
	churn = churn[1:]

	ps := analysis.PowerSpectrum(churn)
	if len(ps) < 2 {
		return fmt.Errorf("not enough steps to analyze (%d)", len(churn))
	}

	fmt.Println(headingStyle.Render("churn analysis"))
	fmt.Printf("steps: %d  framerate: %gHz  mean churn: %.2f%%\n\n", len(churn), cfg.Framerate, stat.Mean(churn, nil)*100)

	graph := asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("churn power spectrum"))
	fmt.Println(graph)

	fmt.Printf("\ndominant frequency: %.3f Hz\n", analysis.DominantFrequency(churn, cfg.Framerate))
	fmt.Printf("resolution: %.3f Hz\n", analysis.BinFrequency(1, len(ps)*2, cfg.Framerate))
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}
	counts := []int{50, 100, 250, 500, 1000}
	rng := rand.New(rand.NewSource(seed))
	tr := delaunay.New()

	fmt.Printf("benchmarking triangulation (%d runs each)\n\n", runs)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINTS\tTRIANGLES\tTIME/OP\tOPS/SEC\tDEGENERATE")

	for _, n := range counts {
		pts := make([]r2.Vec, n)
		for i := range pts {
			pts[i] = r2.Vec{X: rng.Float64() * config.DefaultWidth, Y: rng.Float64() * config.DefaultHeight}
		}

		tris := 0
		degenerate := 0
		start := time.Now()
		for i := 0; i < runs; i++ {
			out, err := tr.Triangulate(pts)
			if errors.Is(err, delaunay.ErrDegenerate) {
				degenerate++
			}
			tris = len(out)
		}
		elapsed := time.Since(start)
		perOp := elapsed / time.Duration(runs)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.1f\t%d\n", n, tris, perOp, float64(runs)/elapsed.Seconds(), degenerate)
	}
	return w.Flush()
}
