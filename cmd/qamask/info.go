package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-qamask/qamask"
)

var infoFlags struct {
	input string
	raw   rawFlags
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize a QA band",
	Long: `Print a QA band's dimensions, value range, and per-bit population.
The per-bit counts show which flag bits are actually exercised in the band,
which helps pick conditions worth masking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		band, err := loadBand(infoFlags.input, infoFlags.raw)
		if err != nil {
			return err
		}
		g := band.Grid
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Band %s\n", infoFlags.input)
		fmt.Fprintf(out, "  Dimensions: %dx%d (%d cells)\n", g.Width, g.Height, g.NumCells())
		if band.Georef != nil {
			fmt.Fprintf(out, "  Georeference: %s\n", band.Georef.CRS)
		}

		if g.NumCells() == 0 {
			return nil
		}

		min, max := g.Pix[0], g.Pix[0]
		var bitCounts [qamask.CellBits]int
		for _, cell := range g.Pix {
			if cell < min {
				min = cell
			}
			if cell > max {
				max = cell
			}
			for bit := uint(0); bit < qamask.CellBits; bit++ {
				if cell&(1<<bit) != 0 {
					bitCounts[bit]++
				}
			}
		}

		fmt.Fprintf(out, "  Value range: %#x - %#x\n", min, max)
		fmt.Fprintf(out, "  Bits set:\n")
		for bit, count := range bitCounts {
			if count > 0 {
				fmt.Fprintf(out, "    bit %2d: %d cells\n", bit, count)
			}
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoFlags.input, "input", "i", "", "input QA band path")
	infoFlags.raw.register(infoCmd)

	if err := infoCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("marking input required: %v", err))
	}
}
