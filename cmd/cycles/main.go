// Command cycles renders a numerological cycle chart from a layered document.
//
// Usage:
//
//	cycles render --day 14 --month 6 --year 1946 --age 79 --document cycles.psd --output out/cycles.png
//	cycles codes --day 14 --month 6 --year 1946 --age 79
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cycles",
	Short:         "Render numerological cycle charts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newCodesCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
