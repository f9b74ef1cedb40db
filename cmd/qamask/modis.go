package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-qamask/qamask"
	"github.com/robert-malhotra/go-qamask/raster"
)

var modisFlags struct {
	input   string
	output  string
	quality string
	stats   bool
	raw     rawFlags
}

var modisCmd = &cobra.Command{
	Use:   "modis",
	Short: "Mask a quality tier in a MODIS land product QA band",
	Long: `Generate a boolean mask for one data-quality tier of a MODIS land
product quality assessment band.

Quality tiers: high, medium, low, low_cloud. Tier matching is always exact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		band, err := loadBand(modisFlags.input, modisFlags.raw)
		if err != nil {
			return err
		}

		name := modisFlags.quality
		if name == "" {
			name = defaults.Quality
		}
		quality, err := qamask.ParseQuality(name)
		if err != nil {
			return err
		}

		mask, err := qamask.NewModisMasker(band.Grid).QualityMask(quality)
		if err != nil {
			return err
		}

		if modisFlags.stats {
			logger.Info("mask computed",
				zap.String("quality", quality.String()),
				zap.Uint64("matched", mask.CountTrue()),
				zap.Int("cells", band.Grid.NumCells()),
			)
		}
		if err := raster.WriteTIFF(modisFlags.output, mask, writeMaskOptions(band)...); err != nil {
			return err
		}
		logger.Debug("mask written", zap.String("path", modisFlags.output))
		return nil
	},
}

func init() {
	f := modisCmd.Flags()
	f.StringVarP(&modisFlags.input, "input", "i", "", "input QA band path")
	f.StringVarP(&modisFlags.output, "output", "o", "", "output mask raster path")
	f.StringVarP(&modisFlags.quality, "quality", "q", "", "quality tier: high, medium, low, low_cloud")
	f.BoolVar(&modisFlags.stats, "stats", false, "log matched-cell statistics")
	modisFlags.raw.register(modisCmd)

	for _, flag := range []string{"input", "output"} {
		if err := modisCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("marking %s required: %v", flag, err))
		}
	}
}
