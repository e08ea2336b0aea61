package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fclip/pkg/errors"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultImageFormat = "png"
	DefaultJPEGQuality = 0.9
)

// Config holds the complete fclip configuration.
type Config struct {
	Clipboard ClipboardConfig `yaml:"clipboard"`
	Image     ImageConfig     `yaml:"image"`
	LogLevel  string          `yaml:"log_level,omitempty"`
}

type ClipboardConfig struct {
	// StrictConversions fails a whole copy batch when any path cannot be
	// converted to a URI, instead of silently dropping the entry.
	StrictConversions bool `yaml:"strict_conversions"`
}

type ImageConfig struct {
	DefaultFormat string  `yaml:"default_format"`
	JPEGQuality   float64 `yaml:"jpeg_quality"`
}

// Load reads the configuration file (if present), then applies .env and
// environment overrides and fills in defaults. A missing config file is
// not an error.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// LoadOrDefault is Load but falls back to defaults when loading fails,
// for commands that should work without any configuration.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		cfg = &Config{}
		applyDefaults(cfg)
	}
	return cfg
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "fclip", "config.yaml"), nil
}

// Save writes the configuration to file, creating the directory if
// needed.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

func loadFromPath(configPath string) (*Config, error) {
	// Pick up a local .env before reading environment overrides. Missing
	// files are fine.
	_ = godotenv.Load()

	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path.
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// File doesn't exist, that's okay - we'll use env vars and defaults
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func applyEnvironmentOverrides(cfg *Config) {
	if !cfg.Clipboard.StrictConversions {
		cfg.Clipboard.StrictConversions = getEnvBool("FCLIP_STRICT_CONVERSIONS", false)
	}
	if cfg.Image.DefaultFormat == "" {
		cfg.Image.DefaultFormat = getEnv("FCLIP_IMAGE_FORMAT", "")
	}
	if cfg.Image.JPEGQuality == 0 {
		cfg.Image.JPEGQuality = getEnvFloat("FCLIP_JPEG_QUALITY", 0)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = getEnv("FCLIP_LOG_LEVEL", "")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Image.DefaultFormat == "" {
		cfg.Image.DefaultFormat = DefaultImageFormat
	}
	if cfg.Image.JPEGQuality == 0 {
		cfg.Image.JPEGQuality = DefaultJPEGQuality
	}
}

// validateConfig ensures configured values are usable.
func validateConfig(cfg *Config) error {
	switch cfg.Image.DefaultFormat {
	case "png", "jpeg", "jpg":
	default:
		return errors.ConfigError(fmt.Sprintf("unsupported image format %q (use png or jpeg)", cfg.Image.DefaultFormat))
	}
	if cfg.Image.JPEGQuality < 0 || cfg.Image.JPEGQuality > 1 {
		return errors.ConfigError(fmt.Sprintf("jpeg_quality %v out of range (use 0.0 to 1.0)", cfg.Image.JPEGQuality))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
