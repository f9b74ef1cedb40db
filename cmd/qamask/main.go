// Command qamask decodes quality-assessment bands of remote-sensing
// products into boolean masks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Persistent flags
	verbose    bool
	configPath string

	logger   *zap.Logger
	defaults cliDefaults
)

var rootCmd = &cobra.Command{
	Use:   "qamask",
	Short: "Decode remote-sensing QA bands into boolean masks",
	Long: `qamask extracts per-pixel condition masks from the bit-packed quality
assessment bands of Landsat 8 and MODIS land products.

Input bands are single-band TIFF files, or headerless flat binary bands when
the --raw-width/--raw-height flags are given. Output masks are 8-bit TIFF
rasters; any georeference sidecars next to the input are copied to the
output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		defaults = defaultCLIDefaults()
		if configPath != "" {
			defaults, err = loadDefaults(configPath)
			if err != nil {
				return err
			}
			logger.Debug("loaded defaults", zap.String("path", configPath))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "yaml file with default levels")

	rootCmd.AddCommand(landsatCmd)
	rootCmd.AddCommand(modisCmd)
	rootCmd.AddCommand(infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
