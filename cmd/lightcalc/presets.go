package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lightcalc/lightcalc/internal/render"
)

type presetsOptions struct {
	paramsOptions
	outputOptions
}

func newPresetsCmd() *cobra.Command {
	o := &presetsOptions{}
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the preset scenarios (builtin plus --catalog).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := o.catalog()
			if err != nil {
				return err
			}
			return render.Scenarios(os.Stdout, list, o.Output)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&o.Catalog, "catalog", "", "Path to an extra scenario catalog (YAML).")
	o.outputOptions.bind(cmd.Flags())
	return cmd
}
