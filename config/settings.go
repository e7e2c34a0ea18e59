// Package config provides configuration structures for the directory service.
// Settings are read from YAML or TOML files, with ${VAR} and ${VAR:-default}
// references expanded from the environment before parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/go-pro-directory/model"
)

// Settings holds the full service configuration.
type Settings struct {
	HTTP      HTTPSettings      `yaml:"http" toml:"http"`
	Logging   LoggingSettings   `yaml:"logging" toml:"logging"`
	Directory DirectorySettings `yaml:"directory" toml:"directory"`
}

// HTTPSettings holds HTTP server settings.
type HTTPSettings struct {
	Port            int `yaml:"port" toml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec" toml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec" toml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec" toml:"shutdown_timeout_sec"`
}

// LoggingSettings holds logging settings.
type LoggingSettings struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error (default: determined by env)
}

// DirectorySettings controls which records are served and how they are presented.
type DirectorySettings struct {
	DataFile     string `yaml:"data_file" toml:"data_file"`         // Seed file; empty means the built-in sample records
	Locale       string `yaml:"locale" toml:"locale"`               // Display locale: "pt-BR" or "en"
	DefaultOrder string `yaml:"default_order" toml:"default_order"` // relevance, rating or reviews
}

// Default returns settings with every default applied.
func Default() Settings {
	var s Settings
	s.ApplyDefaults()
	return s
}

// Load reads settings from path. The format is picked by extension: ".toml" is parsed
// as TOML, anything else as YAML. An empty path returns Default().
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	data = expandEnvVars(data)

	var s Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	}

	s.ApplyDefaults()

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return s, nil
}

// ApplyDefaults fills empty fields with default values.
func (s *Settings) ApplyDefaults() {
	if s.HTTP.Port == 0 {
		s.HTTP.Port = 8080
	}
	if s.HTTP.ReadTimeoutSec <= 0 {
		s.HTTP.ReadTimeoutSec = 10
	}
	if s.HTTP.WriteTimeoutSec <= 0 {
		s.HTTP.WriteTimeoutSec = 10
	}
	if s.HTTP.ShutdownSec <= 0 {
		s.HTTP.ShutdownSec = 10
	}
	if s.Directory.Locale == "" {
		s.Directory.Locale = "pt-BR"
	}
	if s.Directory.DefaultOrder == "" {
		s.Directory.DefaultOrder = "relevance"
	}
}

// Validate checks the configuration for correctness.
// All problems are reported together.
func (s *Settings) Validate() error {
	var problems []string

	if s.HTTP.Port <= 0 || s.HTTP.Port > 65535 {
		problems = append(problems, fmt.Sprintf("http.port must be between 1 and 65535, got %d", s.HTTP.Port))
	}

	switch s.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level must be one of debug, info, warn, error, got %q", s.Logging.Level))
	}

	if _, ok := model.ParseSortOrder(s.Directory.DefaultOrder); !ok {
		problems = append(problems, fmt.Sprintf("directory.default_order must be one of relevance, rating, reviews, got %q", s.Directory.DefaultOrder))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// DefaultSortOrder returns the configured default order as a model value.
func (s *Settings) DefaultSortOrder() model.SortOrder {
	order, _ := model.ParseSortOrder(s.Directory.DefaultOrder)
	return order
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}
