package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eleven-am/commentseed/internal/seed"
	"github.com/eleven-am/commentseed/internal/sqlgen"
	"gopkg.in/yaml.v3"
)

// SeedConfig represents the commentseed.yaml configuration structure
type SeedConfig struct {
	Version string `yaml:"version"`

	Output struct {
		Path       string `yaml:"path"`
		Table      string `yaml:"table"`
		CreateDirs bool   `yaml:"create_dirs"`
	} `yaml:"output"`

	Generate seed.Params `yaml:"generate"`

	Database struct {
		Driver    string `yaml:"driver"`
		URL       string `yaml:"url"`
		BatchSize int    `yaml:"batch_size"`
	} `yaml:"database"`
}

var configLocations = []string{"commentseed.yaml", "commentseed.yml", ".commentseed.yaml", ".commentseed.yml"}

// DefaultConfig returns the compiled-in settings used when no file is found
func DefaultConfig() *SeedConfig {
	config := &SeedConfig{}
	config.applyDefaults()
	return config
}

func (c *SeedConfig) applyDefaults() {
	defaults := seed.DefaultParams()

	if c.Output.Path == "" {
		c.Output.Path = sqlgen.DefaultOutput
	}
	if c.Output.Table == "" {
		c.Output.Table = sqlgen.DefaultTable
	}
	if c.Generate.Tweets == 0 {
		c.Generate.Tweets = defaults.Tweets
	}
	if c.Generate.PerTweet == 0 {
		c.Generate.PerTweet = defaults.PerTweet
	}
	if c.Generate.Users == 0 {
		c.Generate.Users = defaults.Users
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
}

// LoadSeedConfig reads path, or the first config file found in the working
// directory when path is empty. It returns the defaults when there is no file.
func LoadSeedConfig(path string) (*SeedConfig, error) {
	if path == "" {
		path = GetConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SeedConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func GetConfigPath() string {
	if path := os.Getenv("COMMENTSEED_CONFIG"); path != "" {
		return path
	}

	for _, loc := range configLocations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

func SaveSeedConfig(config *SeedConfig, path string) error {
	if path == "" {
		path = configLocations[0]
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
