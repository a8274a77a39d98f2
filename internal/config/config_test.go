package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	os.Unsetenv("PLANNER_LISTEN_ADDR")
	os.Unsetenv("PLANNER_LOG_DIR")
	os.Unsetenv("VERBOSE")
	os.Unsetenv("PLANNER_REQUEST_TIMEOUT_SECONDS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.LogDir != "logs" {
		t.Errorf("LogDir = %q, want logs", cfg.LogDir)
	}
	if cfg.Verbose {
		t.Errorf("Verbose = true, want false")
	}
	if cfg.RequestTimeout.Seconds() != 5 {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	os.Setenv("PLANNER_LISTEN_ADDR", ":9090")
	os.Setenv("PLANNER_LOG_DIR", "/var/log/plannerd")
	os.Setenv("VERBOSE", "true")
	os.Setenv("PLANNER_REQUEST_TIMEOUT_SECONDS", "10")
	defer func() {
		os.Unsetenv("PLANNER_LISTEN_ADDR")
		os.Unsetenv("PLANNER_LOG_DIR")
		os.Unsetenv("VERBOSE")
		os.Unsetenv("PLANNER_REQUEST_TIMEOUT_SECONDS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if cfg.LogDir != "/var/log/plannerd" {
		t.Errorf("LogDir = %q, want /var/log/plannerd", cfg.LogDir)
	}
	if !cfg.Verbose {
		t.Errorf("Verbose = false, want true")
	}
	if cfg.RequestTimeout.Seconds() != 10 {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
}

func TestGetEnvBool_InvalidValueFallsBack(t *testing.T) {
	os.Setenv("PLANNER_TEST_BOOL", "not-a-bool")
	defer os.Unsetenv("PLANNER_TEST_BOOL")

	if got := getEnvBool("PLANNER_TEST_BOOL", true); !got {
		t.Errorf("getEnvBool with invalid value = %v, want fallback true", got)
	}
}
