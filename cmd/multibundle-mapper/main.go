// Package main provides the CLI entrypoint for multibundle-mapper.
//
// multibundle-mapper reads bundle records produced by an optimizer run and
// writes the bundle mapping into one or more files:
//   - JSON app configs, at two document paths
//   - JS loader configs, replacing marker tokens or appending a config call
//   - HTML layouts, the same inside a script element
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "multibundle-mapper [record files...]",
	Short: "Write optimized bundle mappings into JSON, JS or HTML files",
	Long: `multibundle-mapper collects bundle records ({name, outFile, include})
and merges the resulting paths and bundles maps into the configured files.

Records are read from the given files, or from stdin when none are given.
Each input may be a JSON array, JSON lines, or YAML documents.

Example:
  multibundle-mapper --format json --output config/local.json \
    --prefix http://static.company-cdn.com/javascript/ build/bundles.json
  multibundle-mapper -c multibundle.yaml build/*.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error

		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runMap,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	flags := rootCmd.Flags()
	flags.StringVarP(&mapFlags.configPath, "config", "c", "", "YAML config listing output targets")
	flags.StringVarP(&mapFlags.format, "format", "f", "", "Output format: json, js or html")
	flags.StringVarP(&mapFlags.output, "output", "o", "", "Output file path")
	flags.StringVarP(&mapFlags.prefix, "prefix", "p", "", "Path or URL prepended to bundle locations (single-target mode)")
	flags.StringVar(&mapFlags.mappingMarker, "mapping-marker", "", "Marker for the mapping object (document path or token)")
	flags.StringVar(&mapFlags.bundlesMarker, "bundles-marker", "", "Marker for the bundles object (document path or token)")
	flags.StringVar(&mapFlags.configFunc, "config-func", "", "Loader config function for synthesized JS/HTML (default requirejs.config)")
	flags.BoolVar(&mapFlags.strict, "strict", false, "Fail when a marker is missing from an existing JS/HTML file")

	rootCmd.MarkFlagsMutuallyExclusive("config", "format")
	rootCmd.MarkFlagsMutuallyExclusive("config", "output")

	rootCmd.AddCommand(initConfigCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
