package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/gym/runner"
)

var forceInit bool

// initCmd: gym init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with example rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigurationFile(cfgFile, forceInit); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
}

func initConfigurationFile(configurationPath string, force bool) error {
	if configurationPath == "" {
		configurationPath = runner.DefaultConfigPath
	}

	if !force {
		if _, err := os.Stat(configurationPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configurationPath)
		}
	}

	return runner.WriteConfig(configurationPath, runner.DefaultConfig())
}
