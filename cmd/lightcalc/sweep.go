package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lightcalc/lightcalc/internal/render"
	"github.com/lightcalc/lightcalc/internal/sweep"
)

type sweepOptions struct {
	paramsOptions
	outputOptions

	Param       string
	From        float64
	To          float64
	Steps       int
	Log         bool
	Parallelism int
}

func newSweepCmd() *cobra.Command {
	o := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the SNR chain over a one-parameter grid.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context())
		},
		SilenceUsage: true,
	}
	o.paramsOptions.bind(cmd.Flags())
	o.outputOptions.bind(cmd.Flags())
	cmd.Flags().StringVar(&o.Param, "param", "scene_illuminance", "Parameter to sweep.")
	cmd.Flags().Float64Var(&o.From, "from", 1, "Grid start value.")
	cmd.Flags().Float64Var(&o.To, "to", 100000, "Grid end value.")
	cmd.Flags().IntVar(&o.Steps, "steps", 20, "Number of grid points (endpoints included).")
	cmd.Flags().BoolVar(&o.Log, "log", false, "Use logarithmic grid spacing.")
	cmd.Flags().IntVar(&o.Parallelism, "parallelism", 0, "Max concurrent evaluations (0 = GOMAXPROCS).")
	return cmd
}

func (o *sweepOptions) run(ctx context.Context) error {
	base, err := o.resolve()
	if err != nil {
		return err
	}

	g := sweep.Grid{Param: o.Param, From: o.From, To: o.To, Steps: o.Steps, Log: o.Log}
	points, err := sweep.Run(ctx, base, g, o.Parallelism)
	if err != nil {
		return err
	}
	return render.Sweep(os.Stdout, o.Param, points, o.Output)
}
