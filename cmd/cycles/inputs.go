package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/cycles/chart"
)

// addInputFlags registers the chart input flags on cmd.
func addInputFlags(cmd *cobra.Command, in *chart.BirthInputs) {
	f := cmd.Flags()
	f.IntVar(&in.Day, "day", 0, "birth day")
	f.IntVar(&in.Month, "month", 0, "birth month")
	f.IntVar(&in.Year, "year", 0, "birth year")
	f.IntVar(&in.Age, "age", 0, "age in years")
	for _, name := range []string{"day", "month", "year", "age"} {
		_ = cmd.MarkFlagRequired(name)
	}
}
