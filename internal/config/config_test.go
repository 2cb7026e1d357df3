package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TASKAPI_CONFIG", "")
	t.Setenv("TASKAPI_ADDR", "")
	t.Setenv("TASKAPI_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr=%q, want %q", cfg.Addr, ":8080")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel=%q, want %q", cfg.LogLevel, "info")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout=%v, want %v", cfg.ShutdownTimeout, 10*time.Second)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "addr: \":9090\"\nlog_level: debug\nshutdown_timeout: 5s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config err=%v", err)
	}

	t.Setenv("TASKAPI_CONFIG", path)
	t.Setenv("TASKAPI_ADDR", "")
	t.Setenv("TASKAPI_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("Addr=%q, want %q", cfg.Addr, ":9090")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel=%q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("ShutdownTimeout=%v, want %v", cfg.ShutdownTimeout, 5*time.Second)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TASKAPI_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("TASKAPI_ADDR", "")
	t.Setenv("TASKAPI_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr=%q, want %q", cfg.Addr, ":8080")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config err=%v", err)
	}

	t.Setenv("TASKAPI_CONFIG", path)
	t.Setenv("TASKAPI_ADDR", ":7070")
	t.Setenv("TASKAPI_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("Addr=%q, want %q", cfg.Addr, ":7070")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel=%q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("shutdown_timeout: soon\n"), 0o644); err != nil {
		t.Fatalf("write config err=%v", err)
	}

	t.Setenv("TASKAPI_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatalf("Load() err=nil, want non-nil")
	}
}
