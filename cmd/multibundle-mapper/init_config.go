package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"multibundle-mapper/internal/config"
)

var forceInit bool

// initConfigCmd writes a sample config file
var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write a sample YAML config with one target per format",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "multibundle.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		return writeSampleConfig(cmd, path, forceInit)
	},
}

func init() {
	initConfigCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
}

func writeSampleConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if err := config.WriteFile(config.Sample(), path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

	return nil
}
