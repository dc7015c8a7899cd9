package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lightcalc/lightcalc/internal/engine"
	"github.com/lightcalc/lightcalc/internal/render"
	"github.com/lightcalc/lightcalc/internal/scenario"
)

type computeOptions struct {
	paramsOptions
	outputOptions

	Watch bool
}

func newComputeCmd() *cobra.Command {
	o := &computeOptions{}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Evaluate the SNR chain once for a parameter set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context())
		},
		SilenceUsage: true,
	}
	o.paramsOptions.bind(cmd.Flags())
	o.outputOptions.bind(cmd.Flags())
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Recompute whenever the --params file changes (until interrupted).")
	return cmd
}

func (o *computeOptions) run(ctx context.Context) error {
	if o.Watch && o.ParamsFile == "" {
		return fmt.Errorf("--watch requires --params")
	}

	p, err := o.resolve()
	if err != nil {
		return err
	}

	res, err := engine.Compute(p)
	if err != nil {
		return err
	}
	if err := render.Result(os.Stdout, res, o.Output); err != nil {
		return err
	}

	if !o.Watch {
		return nil
	}

	return scenario.Watch(ctx, o.ParamsFile, func(p engine.Params) {
		res, err := engine.Compute(p)
		if err != nil {
			// LoadParams already validated; reaching this would be a bug.
			slog.Error("compute failed after reload", "err", err)
			return
		}
		fmt.Println()
		if err := render.Result(os.Stdout, res, o.Output); err != nil {
			slog.Error("render failed", "err", err)
		}
	})
}
