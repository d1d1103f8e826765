package search

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall configuration: named pattern aliases and
// output defaults.
type Config struct {
	Name        string            `yaml:"name"`
	Patterns    map[string]string `yaml:"patterns"`
	MaxMatches  int               `yaml:"max-matches"`
	IgnorePaths []string          `yaml:"ignore-paths"`
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	if configurationPath == "" {
		return config, nil
	}

	// Read the configuration file
	f, err := os.Open(configurationPath)
	if err != nil {
		if os.IsNotExist(err) {
			// a missing configuration file is not an error; defaults apply
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	// Parse the configuration file
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
