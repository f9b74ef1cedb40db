package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-qamask/qamask"
	"github.com/robert-malhotra/go-qamask/raster"
)

var landsatFlags struct {
	input      string
	output     string
	target     string
	confidence string
	cumulative bool
	stats      bool
	raw        rawFlags
}

var landsatCmd = &cobra.Command{
	Use:   "landsat",
	Short: "Mask a condition in a Landsat 8 QA band",
	Long: `Generate a boolean mask for one condition of a Landsat 8 quality
assessment band.

Targets: cloud, cirrus, water, vegetation, snow, fill.
Confidence levels: high, medium, low, undefined. With --cumulative, any
confidence at or above the requested level matches. The fill target takes no
confidence level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		band, err := loadBand(landsatFlags.input, landsatFlags.raw)
		if err != nil {
			return err
		}
		masker := qamask.NewLandsatMasker(band.Grid)

		var mask *qamask.Mask
		if landsatFlags.target == "fill" {
			mask, err = masker.FillMask()
		} else {
			name := landsatFlags.confidence
			if name == "" {
				name = defaults.Confidence
			}
			var conf qamask.Confidence
			conf, err = qamask.ParseConfidence(name)
			if err != nil {
				return err
			}
			mask, err = masker.ConditionMask(landsatFlags.target, conf, landsatFlags.cumulative)
		}
		if err != nil {
			return err
		}

		if landsatFlags.stats {
			logger.Info("mask computed",
				zap.String("target", landsatFlags.target),
				zap.Uint64("matched", mask.CountTrue()),
				zap.Int("cells", band.Grid.NumCells()),
			)
		}
		if err := raster.WriteTIFF(landsatFlags.output, mask, writeMaskOptions(band)...); err != nil {
			return err
		}
		logger.Debug("mask written", zap.String("path", landsatFlags.output))
		return nil
	},
}

func init() {
	f := landsatCmd.Flags()
	f.StringVarP(&landsatFlags.input, "input", "i", "", "input QA band path")
	f.StringVarP(&landsatFlags.output, "output", "o", "", "output mask raster path")
	f.StringVarP(&landsatFlags.target, "target", "t", "", "target condition: cloud, cirrus, water, vegetation, snow, fill")
	f.StringVarP(&landsatFlags.confidence, "confidence", "c", "", "confidence level: high, medium, low, undefined")
	f.BoolVar(&landsatFlags.cumulative, "cumulative", false, "match the requested confidence or above")
	f.BoolVar(&landsatFlags.stats, "stats", false, "log matched-cell statistics")
	landsatFlags.raw.register(landsatCmd)

	for _, flag := range []string{"input", "output", "target"} {
		if err := landsatCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("marking %s required: %v", flag, err))
		}
	}
}
