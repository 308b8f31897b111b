package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Output     string
	NameFilter string
	Sources    bool
}

// New creates a new Config with defaults, applying any environment
// overrides (a .env file in the project directory is honored when present)
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}

	// .env is optional; plain environment variables still apply
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.OutputJSONDir = dir
	}
	if file := os.Getenv(EnvOutputFile); file != "" {
		cfg.OutputJSONFile = file
	}

	return cfg
}

// GetOutputPath returns the full path to the fixtures JSON file. The
// --output flag wins over config; relative flag paths stay relative to the
// working directory, everything else resolves to an absolute path so
// generate, verify and view all read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	if c.Flags.Output != "" {
		return c.Flags.Output
	}
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
