package cmd

import (
	"fmt"

	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/tgrep/search"
)

// initCmd: tgrep init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new tgrep configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			exitCode = ExitUsage
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = ".tgrep.yaml"
	}

	// Create a yaml file with a few example pattern aliases
	config := search.Config{
		Name: "tgrep",
		Patterns: map[string]string{
			"digits": `\d+`,
			"word":   `\w+`,
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
