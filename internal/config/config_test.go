package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Profile != "profile1" {
		t.Errorf("Profile = %q", cfg.Profile)
	}
	if cfg.WeekStartDay != "monday" {
		t.Errorf("WeekStartDay = %q", cfg.WeekStartDay)
	}
	if cfg.Timezone != "Local" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.Theme == "" {
		t.Error("expected a default theme")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected the defaults, got %+v", cfg)
	}
}

func TestLoadOrDefault_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `profile = "work"
week_start_day = "sunday"
timezone = "Europe/Oslo"
theme = "dracula"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profile != "work" {
		t.Errorf("Profile = %q", cfg.Profile)
	}
	if cfg.WeekStartDay != "sunday" {
		t.Errorf("WeekStartDay = %q", cfg.WeekStartDay)
	}
	if cfg.Timezone != "Europe/Oslo" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
}

func TestLoadOrDefault_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = "nord"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Profile != "profile1" {
		t.Errorf("expected the default profile kept, got %q", cfg.Profile)
	}
}

func TestLoadOrDefault_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("expected an error for an unparseable config")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := Config{Profile: "work", WeekStartDay: "sunday", Timezone: "UTC", Theme: "nord"}

	if err := Save(path, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected no .tmp leftover")
	}
}

func TestConfig_WeekStart(t *testing.T) {
	tests := []struct {
		day  string
		want time.Weekday
	}{
		{"monday", time.Monday},
		{"sunday", time.Sunday},
		{"", time.Monday},
		{"garbage", time.Monday},
	}
	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			cfg := Config{WeekStartDay: tt.day}
			if got := cfg.WeekStart(); got != tt.want {
				t.Errorf("WeekStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Location(t *testing.T) {
	if got := (Config{Timezone: "Local"}).Location(); got != time.Local {
		t.Errorf("Local = %v", got)
	}
	if got := (Config{Timezone: ""}).Location(); got != time.Local {
		t.Errorf("empty = %v", got)
	}
	if got := (Config{Timezone: "bogus/zone"}).Location(); got != time.Local {
		t.Errorf("unknown zone should fall back, got %v", got)
	}
	if got := (Config{Timezone: "UTC"}).Location(); got.String() != "UTC" {
		t.Errorf("UTC = %v", got)
	}
}
