package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_RetryPolicy(t *testing.T) {
	cfg := Default()
	if cfg.TimeoutSecs != 30 {
		t.Fatalf("Default().TimeoutSecs = %d, want 30", cfg.TimeoutSecs)
	}
	if cfg.MaxAttempts != 3 {
		t.Fatalf("Default().MaxAttempts = %d, want 3", cfg.MaxAttempts)
	}
	if cfg.RetryDelayMS != 1000 {
		t.Fatalf("Default().RetryDelayMS = %d, want 1000", cfg.RetryDelayMS)
	}
}

func TestLoad_MissingFile_UsesDefaults(t *testing.T) {
	t.Setenv("NETCORES_API_URL", "")
	t.Setenv("NETCORES_TIMEOUT_SECS", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Fatalf("cfg.Source = %q, want %q", cfg.Source, path)
	}
	if cfg.APIURL != "http://localhost:8000" {
		t.Fatalf("cfg.APIURL = %q, want default", cfg.APIURL)
	}
}

func TestLoad_FromTOML(t *testing.T) {
	t.Setenv("NETCORES_API_URL", "")
	t.Setenv("NETCORES_TIMEOUT_SECS", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "https://cores.example.test"
timeout_secs = 12
max_attempts = 5
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://cores.example.test" {
		t.Fatalf("cfg.APIURL = %q", cfg.APIURL)
	}
	if cfg.TimeoutSecs != 12 {
		t.Fatalf("cfg.TimeoutSecs = %d, want 12", cfg.TimeoutSecs)
	}
	if cfg.MaxAttempts != 5 {
		t.Fatalf("cfg.MaxAttempts = %d, want 5", cfg.MaxAttempts)
	}
	if cfg.RetryDelayMS != 1000 {
		t.Fatalf("cfg.RetryDelayMS = %d, want default 1000", cfg.RetryDelayMS)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("NETCORES_API_URL", "http://127.0.0.1:9999")
	t.Setenv("NETCORES_TIMEOUT_SECS", "7")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = "https://file.example.test"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:9999" {
		t.Fatalf("cfg.APIURL = %q, want env override", cfg.APIURL)
	}
	if cfg.TimeoutSecs != 7 {
		t.Fatalf("cfg.TimeoutSecs = %d, want 7", cfg.TimeoutSecs)
	}
}

func TestApplyKVOverrides(t *testing.T) {
	cfg := Default()
	got := ApplyKVOverrides(cfg, []string{
		"api_url=http://10.0.0.1:8000",
		"max_attempts=4",
		"retry_delay_ms=250",
		"timeout_secs=not-a-number",
	})
	if got.APIURL != "http://10.0.0.1:8000" {
		t.Fatalf("APIURL = %q", got.APIURL)
	}
	if got.MaxAttempts != 4 {
		t.Fatalf("MaxAttempts = %d, want 4", got.MaxAttempts)
	}
	if got.RetryDelayMS != 250 {
		t.Fatalf("RetryDelayMS = %d, want 250", got.RetryDelayMS)
	}
	if got.TimeoutSecs != 30 {
		t.Fatalf("TimeoutSecs = %d, want unchanged 30", got.TimeoutSecs)
	}
}
