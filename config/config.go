// Package config loads the dispatch configuration from YAML files and
// environment variables.
//
//	level: info
//	file: ./log/%Y-%m-%d.log
//	modules:
//	  db: warn
//	  net/http: debug
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/linelog/core"
)

// Environment variables that override file values
const (
	EnvLevel = "LINELOG_LEVEL"
	EnvFile  = "LINELOG_FILE"
)

// DefaultFilePath is the log file template used when none is configured
const DefaultFilePath = "./log/%Y-%m-%d.log"

// Config is the dispatch configuration
type Config struct {
	// Level is the global minimum level
	Level core.Level `yaml:"level"`
	// Modules holds per-module level overrides
	Modules map[string]core.Level `yaml:"modules"`
	// FilePath is the strftime template of the log file path
	FilePath string `yaml:"file"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Level:    core.InfoLevel,
		FilePath: DefaultFilePath,
	}
}

// Parse decodes YAML on top of the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: parse")
	}
	return cfg, nil
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. An empty path loads the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "config: read %s", path)
		}
		if cfg, err = Parse(data); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		l, err := core.ParseLevel(v)
		if err != nil {
			return errors.Wrap(err, "config: "+EnvLevel)
		}
		c.Level = l
	}
	if v, ok := os.LookupEnv(EnvFile); ok && v != "" {
		c.FilePath = v
	}
	return nil
}

// Validate checks that the configuration can build a pipeline
func (c Config) Validate() error {
	if c.FilePath == "" {
		return errors.New("config: file path template is empty")
	}
	if !validLevel(c.Level) {
		return errors.Errorf("config: invalid level %d", c.Level)
	}
	for module, l := range c.Modules {
		if module == "" {
			return errors.New("config: empty module name in overrides")
		}
		if !validLevel(l) {
			return errors.Errorf("config: invalid level %d for module %q", l, module)
		}
	}
	return nil
}

func validLevel(l core.Level) bool {
	return l >= core.TraceLevel && l <= core.ErrorLevel
}
