package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/cycles/chart"
	"github.com/gogpu/cycles/internal/config"
)

// newCodesCmd prints the paint order, one layer name per line. Document
// authors use it to check which layers a chart needs.
func newCodesCmd() *cobra.Command {
	var (
		in     chart.BirthInputs
		frames string
	)
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Print the layer names a chart paints, bottom first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := in.Validate(); err != nil {
				return err
			}
			table, err := config.Config{Frames: frames}.FrameTable()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range chart.Derive(in).PaintOrder(table) {
				if _, err := fmt.Fprintln(w, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addInputFlags(cmd, &in)
	cmd.Flags().StringVar(&frames, "frames", config.FramesLegacy, "frame table: legacy, corrected or none")
	return cmd
}
