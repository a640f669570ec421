package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Drive   DriveConfig   `yaml:"drive"`
	Paths   PathsConfig   `yaml:"paths"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type GeminiConfig struct {
	APIKeys        []string `yaml:"api_keys"`
	Model          string   `yaml:"model"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type DriveConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	OutputFolder    string `yaml:"output_folder"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	State  string `yaml:"state"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file, applies environment overrides and validates it.
// A missing file is not an error: defaults and environment are used instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "config.yaml"

func (c *Config) applyEnv() {
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		c.Gemini.APIKeys = splitList(keys)
	} else if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		c.Gemini.APIKeys = []string{key}
	}
	if path := strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_FILE")); path != "" {
		c.Drive.CredentialsFile = path
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks required fields and fills in defaults
func (c *Config) Validate() error {
	var keys []string
	for _, key := range c.Gemini.APIKeys {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	c.Gemini.APIKeys = keys

	if c.Gemini.TimeoutSeconds < 0 {
		return fmt.Errorf("gemini.timeout_seconds must not be negative")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TimeoutSeconds == 0 {
		c.Gemini.TimeoutSeconds = 120
	}
	if c.Drive.OutputFolder == "" {
		c.Drive.OutputFolder = "요약노트"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.State == "" {
		c.Paths.State = "data/state"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}

// RequireGemini reports whether the model can be called with this config
func (c *Config) RequireGemini() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEY)")
	}
	return nil
}

// RequireDrive reports whether Drive credentials are available
func (c *Config) RequireDrive() error {
	if c.Drive.CredentialsFile == "" && os.Getenv("GOOGLE_CREDENTIALS_JSON") == "" {
		return fmt.Errorf("drive.credentials_file is required (or set GOOGLE_CREDENTIALS_JSON)")
	}
	return nil
}
