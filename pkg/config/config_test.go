package config

import (
	"os"
	"path/filepath"
	"testing"

	"fclip/pkg/errors"
)

// setTestEnv points the config loader at tmpDir and clears every FCLIP_*
// override, restoring the previous environment on cleanup.
func setTestEnv(t *testing.T, tmpDir string) {
	t.Helper()

	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", "")
	for _, key := range []string{"FCLIP_STRICT_CONVERSIONS", "FCLIP_IMAGE_FORMAT", "FCLIP_JPEG_QUALITY", "FCLIP_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeTestConfig(t *testing.T, tmpDir, content string) {
	t.Helper()

	configDir := filepath.Join(tmpDir, ".config", "fclip")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setTestEnv(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Clipboard.StrictConversions {
		t.Error("Expected strict_conversions to default to false")
	}
	if cfg.Image.DefaultFormat != DefaultImageFormat {
		t.Errorf("Expected default format %q, got %q", DefaultImageFormat, cfg.Image.DefaultFormat)
	}
	if cfg.Image.JPEGQuality != DefaultJPEGQuality {
		t.Errorf("Expected default quality %v, got %v", DefaultJPEGQuality, cfg.Image.JPEGQuality)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	setTestEnv(t, tmpDir)
	writeTestConfig(t, tmpDir, `clipboard:
  strict_conversions: true
image:
  default_format: jpeg
  jpeg_quality: 0.5
log_level: debug
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !cfg.Clipboard.StrictConversions {
		t.Error("Expected strict_conversions true")
	}
	if cfg.Image.DefaultFormat != "jpeg" {
		t.Errorf("Expected format 'jpeg', got %q", cfg.Image.DefaultFormat)
	}
	if cfg.Image.JPEGQuality != 0.5 {
		t.Errorf("Expected quality 0.5, got %v", cfg.Image.JPEGQuality)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log_level 'debug', got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setTestEnv(t, t.TempDir())
	t.Setenv("FCLIP_STRICT_CONVERSIONS", "true")
	t.Setenv("FCLIP_IMAGE_FORMAT", "jpeg")
	t.Setenv("FCLIP_JPEG_QUALITY", "0.42")
	t.Setenv("FCLIP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !cfg.Clipboard.StrictConversions {
		t.Error("Expected strict_conversions true from env")
	}
	if cfg.Image.DefaultFormat != "jpeg" {
		t.Errorf("Expected format 'jpeg', got %q", cfg.Image.DefaultFormat)
	}
	if cfg.Image.JPEGQuality != 0.42 {
		t.Errorf("Expected quality 0.42, got %v", cfg.Image.JPEGQuality)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log_level 'warn', got %q", cfg.LogLevel)
	}
}

func TestLoad_FileBeatsEnv(t *testing.T) {
	tmpDir := t.TempDir()
	setTestEnv(t, tmpDir)
	writeTestConfig(t, tmpDir, `image:
  default_format: png
`)
	t.Setenv("FCLIP_IMAGE_FORMAT", "jpeg")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Image.DefaultFormat != "png" {
		t.Errorf("Expected file value 'png' to win, got %q", cfg.Image.DefaultFormat)
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()
	setTestEnv(t, tmpDir)
	writeTestConfig(t, tmpDir, `image:
  default_format: bmp
`)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() accepted an unsupported image format")
	}
	if !errors.IsExitCode(err, errors.ExitCodeConfig) {
		t.Errorf("Expected config exit code, got %v", err)
	}
}

func TestLoad_InvalidQuality(t *testing.T) {
	tmpDir := t.TempDir()
	setTestEnv(t, tmpDir)
	writeTestConfig(t, tmpDir, `image:
  jpeg_quality: 1.5
`)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() accepted an out-of-range jpeg_quality")
	}
	if !errors.IsExitCode(err, errors.ExitCodeConfig) {
		t.Errorf("Expected config exit code, got %v", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	setTestEnv(t, t.TempDir())

	cfg := &Config{
		Clipboard: ClipboardConfig{StrictConversions: true},
		Image:     ImageConfig{DefaultFormat: "jpeg", JPEGQuality: 0.7},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !loaded.Clipboard.StrictConversions || loaded.Image.DefaultFormat != "jpeg" || loaded.Image.JPEGQuality != 0.7 {
		t.Errorf("reloaded config = %+v, want saved values", loaded)
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	setTestEnv(t, tmpDir)

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned error: %v", err)
	}
	want := filepath.Join(tmpDir, ".config", "fclip", "config.yaml")
	if path != want {
		t.Errorf("GetConfigPath() = %q, want %q", path, want)
	}
}
