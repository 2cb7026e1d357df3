package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr            string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// fileConfig is the YAML shape; the timeout is a Go duration string.
type fileConfig struct {
	Addr            string `yaml:"addr"`
	LogLevel        string `yaml:"log_level"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		ShutdownTimeout: time.Second * 10,
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// TASKAPI_CONFIG, and finally environment overrides. A missing config file is
// not an error; defaults fill every gap.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("TASKAPI_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	if addr := os.Getenv("TASKAPI_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if level := os.Getenv("TASKAPI_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.Addr != "" {
		c.Addr = fc.Addr
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.ShutdownTimeout)
		if err != nil {
			return err
		}
		c.ShutdownTimeout = d
	}

	return nil
}
