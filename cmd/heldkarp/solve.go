package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/instance"
	"github.com/katalvlaran/heldkarp/render"
	"github.com/katalvlaran/heldkarp/tsp"
)

type solveFlags struct {
	file      string
	workers   int
	maxCities int
	timeout   time.Duration
	symmetric bool
	pngPath   string
	dotPath   string
	title     string
}

func newSolveCmd(a *app) *cobra.Command {
	f := solveFlags{
		workers:   a.cfg.Workers,
		maxCities: a.cfg.MaxCities,
		timeout:   a.cfg.Timeout,
	}

	cmd := &cobra.Command{
		Use:   "solve [x,y ...]",
		Short: "Compute the optimal tour and its total distance",
		Example: `  heldkarp solve 0,0 0,1 1,1 1,0
  heldkarp solve --file cities.yaml --workers 8 --png tour.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "instance file (YAML or JSON)")
	fl.IntVarP(&f.workers, "workers", "w", f.workers, "goroutines per subset layer")
	fl.IntVar(&f.maxCities, "max-cities", f.maxCities, fmt.Sprintf("refuse instances larger than this (ceiling %d)", tsp.HardMaxCities))
	fl.DurationVar(&f.timeout, "timeout", f.timeout, "abort the solve after this long (0 = no limit)")
	fl.BoolVar(&f.symmetric, "symmetric", false, "reject asymmetric distance matrices")
	fl.StringVar(&f.pngPath, "png", "", "write a PNG plot of the tour to this path")
	fl.StringVar(&f.dotPath, "dot", "", "write a Graphviz DOT file of the tour to this path")
	fl.StringVar(&f.title, "title", "", "plot title")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, f solveFlags, args []string) error {
	inst, err := loadInstance(f.file, args)
	if err != nil {
		return err
	}
	dist, err := inst.Matrix()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	opts := tsp.DefaultOptions()
	opts.Workers = f.workers
	opts.MaxCities = f.maxCities
	opts.Symmetric = f.symmetric

	log := a.log().With("instance", inst.Name, "cities", inst.Len())
	log.Debug("solving", "workers", opts.Workers, "max_cities", opts.MaxCities)

	start := time.Now()
	res, err := tsp.HeldKarpContext(ctx, dist, opts)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	log.Info("solved", "cost", res.Cost, "states", res.States, "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Optimal tour: %v\n", res.Tour)
	fmt.Fprintf(out, "Total distance: %.2f\n", res.Cost)
	if hasNames(inst) {
		fmt.Fprintf(out, "Route: %s\n", route(inst, res.Tour))
	}

	return writeRenderings(a, inst, res.Tour, f)
}

// writeRenderings emits the requested PNG and DOT files.
func writeRenderings(a *app, inst *instance.Instance, tour []int, f solveFlags) error {
	if f.pngPath == "" && f.dotPath == "" {
		return nil
	}
	pts, err := inst.Points()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	opts := render.DefaultOptions()
	if f.title != "" {
		opts.Title = f.title
	} else if inst.Name != "" {
		opts.Title = opts.Title + ": " + inst.Name
	}

	if f.pngPath != "" {
		if err = render.SavePNG(f.pngPath, pts, tour, opts); err != nil {
			return err
		}
		a.log().Info("wrote plot", "path", f.pngPath)
	}
	if f.dotPath != "" {
		doc, err := render.DOT(pts, tour, opts)
		if err != nil {
			return err
		}
		if err = os.WriteFile(f.dotPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("render: write %s: %w", f.dotPath, err)
		}
		a.log().Info("wrote graph", "path", f.dotPath)
	}

	return nil
}

func hasNames(inst *instance.Instance) bool {
	for _, c := range inst.Cities {
		if c.Name != "" {
			return true
		}
	}

	return false
}

// route joins the city labels of tour with arrows.
func route(inst *instance.Instance, tour []int) string {
	labels := make([]string, len(tour))
	for i, c := range tour {
		labels[i] = inst.Label(c)
	}

	return strings.Join(labels, " -> ")
}
