package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "lightcalc",
	Short: "Imaging-sensor SNR calculator: scene light in, electrons and noise out.",
}

func init() {
	rootCmd.AddCommand(newComputeCmd())
	rootCmd.AddCommand(newSweepCmd())
	rootCmd.AddCommand(newPresetsCmd())
}
