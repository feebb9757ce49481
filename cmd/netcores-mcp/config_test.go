package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"netcores-mcp/internal/config"
)

func TestRunConfig_SetPersistsValues(t *testing.T) {
	t.Setenv("NETCORES_API_URL", "")
	t.Setenv("NETCORES_TIMEOUT_SECS", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	var out bytes.Buffer
	err := runConfig(rootArgs{},
		[]string{"-config", path, "set", "api_url=http://analysis.internal:9000", "max_attempts=5"}, &out)
	if err != nil {
		t.Fatalf("runConfig set: %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("expected written path in output: %q", out.String())
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load after set: %v", err)
	}
	if cfg.APIURL != "http://analysis.internal:9000" {
		t.Fatalf("api_url = %q", cfg.APIURL)
	}
	if cfg.MaxAttempts != 5 {
		t.Fatalf("max_attempts = %d", cfg.MaxAttempts)
	}
	// Untouched keys keep their defaults.
	if cfg.TimeoutSecs != config.Default().TimeoutSecs {
		t.Fatalf("timeout_secs = %d, want default", cfg.TimeoutSecs)
	}
}

func TestRunConfig_SetAccumulatesAcrossRuns(t *testing.T) {
	t.Setenv("NETCORES_API_URL", "")
	t.Setenv("NETCORES_TIMEOUT_SECS", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	var out bytes.Buffer
	if err := runConfig(rootArgs{}, []string{"-config", path, "set", "api_url=http://one:8000"}, &out); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := runConfig(rootArgs{}, []string{"-config", path, "set", "retry_delay_ms=50"}, &out); err != nil {
		t.Fatalf("second set: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://one:8000" || cfg.RetryDelayMS != 50 {
		t.Fatalf("second set lost earlier value: %+v", cfg)
	}
}

func TestRunConfig_ShowPrintsEffectiveValues(t *testing.T) {
	t.Setenv("NETCORES_API_URL", "")
	t.Setenv("NETCORES_TIMEOUT_SECS", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	var out bytes.Buffer
	err := runConfig(rootArgs{overrides: []string{"api_url=http://override:7000"}},
		[]string{"-config", path}, &out)
	if err != nil {
		t.Fatalf("runConfig show: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "api_url        = http://override:7000") {
		t.Fatalf("root -c override not reflected:\n%s", got)
	}
	if !strings.Contains(got, "max_attempts   = 3") {
		t.Fatalf("defaults missing:\n%s", got)
	}
}

func TestRunConfig_SetWithoutPairsErrors(t *testing.T) {
	var out bytes.Buffer
	if err := runConfig(rootArgs{}, []string{"-config", filepath.Join(t.TempDir(), "c.toml"), "set"}, &out); err == nil {
		t.Fatalf("expected error for bare config set")
	}
}

func TestRunConfig_UnknownActionErrors(t *testing.T) {
	var out bytes.Buffer
	if err := runConfig(rootArgs{}, []string{"get"}, &out); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}
