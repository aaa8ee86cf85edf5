package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds CLI configuration persisted to disk.
type Config struct {
	DatabasePath string `yaml:"database_path,omitempty"`
	Port         int    `yaml:"port,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "imob", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// databasePath returns the database path from env var or config file.
// Empty means "use the default path".
func databasePath() string {
	if v := os.Getenv("IMOB_DB"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.DatabasePath != "" {
		return cfg.DatabasePath
	}
	return ""
}

// serverPort returns the port from env var, config file, or default.
func serverPort() int {
	if v := os.Getenv("IMOB_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			return port
		}
	}
	cfg, err := loadConfig()
	if err == nil && cfg.Port > 0 {
		return cfg.Port
	}
	return 8080
}
