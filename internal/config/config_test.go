package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := *cfg, *DefaultConfig(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if runtime.GOOS != "windows" {
		if got, want := info.Mode().Perm(), os.FileMode(0o600); got != want {
			t.Errorf("got perms %v, want %v", got, want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "listen: \"\"\ncache_ttl_seconds: -5\nbasic_auth:\n  username: admin\n  password: secret\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Listen != defaultListen {
		t.Errorf("Listen = %q, want %q", cfg.Listen, defaultListen)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.CacheTTLSeconds != defaultCacheTTL {
		t.Errorf("CacheTTLSeconds = %d, want %d", cfg.CacheTTLSeconds, defaultCacheTTL)
	}
	if cfg.BasicAuth == nil || cfg.BasicAuth.Username != "admin" || cfg.BasicAuth.Password != "secret" {
		t.Errorf("BasicAuth = %+v", cfg.BasicAuth)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{Listen: ":9000", LogLevel: "debug", CacheTTLSeconds: 0}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", *got, *cfg)
	}
}

func TestSaveErrors(t *testing.T) {
	if err := Save("", DefaultConfig()); err == nil {
		t.Error("expected error for empty path")
	}
	if err := Save(filepath.Join(t.TempDir(), "c.yaml"), nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := Load(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvListen, ":7000")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvCacheTTL, "0")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	if cfg.Listen != ":7000" || cfg.LogLevel != "debug" || cfg.CacheTTLSeconds != 0 {
		t.Errorf("got %+v", *cfg)
	}

	t.Setenv(EnvCacheTTL, "soon")
	cfg = DefaultConfig()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("expected error for non-integer TTL")
	}
	if cfg.CacheTTLSeconds != defaultCacheTTL {
		t.Errorf("CacheTTLSeconds changed to %d", cfg.CacheTTLSeconds)
	}
}
