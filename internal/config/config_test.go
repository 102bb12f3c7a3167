package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestNew_Defaults(t *testing.T) {
	unsetEnv(t, "TASKMAN_API_URL")
	unsetEnv(t, "TASKMAN_LOG_FILE")
	dir := t.TempDir()

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.APIURL != "" {
		t.Errorf("expected no api url from the environment, got %q", cfg.APIURL)
	}
	if cfg.BaseURL() != DefaultAPIURL {
		t.Errorf("expected %q, got %q", DefaultAPIURL, cfg.BaseURL())
	}
	if cfg.LogPath() != filepath.Join(dir, LogFile) {
		t.Errorf("expected log in config dir, got %q", cfg.LogPath())
	}
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("TASKMAN_API_URL", "http://tasks.internal:9000")
	t.Setenv("TASKMAN_LOG_FILE", "/tmp/custom.log")

	cfg, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL() != "http://tasks.internal:9000" {
		t.Errorf("expected env api url, got %q", cfg.BaseURL())
	}
	if cfg.LogPath() != "/tmp/custom.log" {
		t.Errorf("expected env log file, got %q", cfg.LogPath())
	}
}

func TestNew_DotEnvFile(t *testing.T) {
	unsetEnv(t, "TASKMAN_API_URL")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte("TASKMAN_API_URL=http://from-dotenv:8081\n"), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL() != "http://from-dotenv:8081" {
		t.Errorf("expected .env api url, got %q", cfg.BaseURL())
	}
}

func TestNew_EnvBeatsDotEnv(t *testing.T) {
	t.Setenv("TASKMAN_API_URL", "http://from-env:1")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte("TASKMAN_API_URL=http://from-dotenv:2\n"), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL() != "http://from-env:1" {
		t.Errorf("expected environment to win, got %q", cfg.BaseURL())
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/xdg", AppName) {
		t.Errorf("expected %q, got %q", filepath.Join("/xdg", AppName), got)
	}
}

func TestBaseURL_EmptyFallsBack(t *testing.T) {
	cfg := &Config{}
	if cfg.BaseURL() != DefaultAPIURL {
		t.Errorf("expected %q, got %q", DefaultAPIURL, cfg.BaseURL())
	}
}
