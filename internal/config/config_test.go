package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.DayStart != "09:00" {
		t.Errorf("expected day_start 09:00, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Schedule.DayEnd != "18:00" {
		t.Errorf("expected day_end 18:00, got %s", cfg.Schedule.DayEnd)
	}
	if cfg.Schedule.SlotMinutes != 60 {
		t.Errorf("expected slot_minutes 60, got %d", cfg.Schedule.SlotMinutes)
	}
	if cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Errorf("expected default base_url, got %s", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.Timeout())
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Schedule.DayStart != "09:00" {
		t.Errorf("expected default day_start, got %s", cfg.Schedule.DayStart)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[api]
base_url = "http://booking.local:9090/api"
timeout_seconds = 5

[schedule]
day_start = "08:00"
day_end = "16:00"
slot_minutes = 30

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://booking.local:9090/api" {
		t.Errorf("expected base_url from file, got %s", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Timeout())
	}
	if cfg.Schedule.DayStart != "08:00" {
		t.Errorf("expected day_start 08:00, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Schedule.DayEnd != "16:00" {
		t.Errorf("expected day_end 16:00, got %s", cfg.Schedule.DayEnd)
	}
	if cfg.Schedule.SlotMinutes != 30 {
		t.Errorf("expected slot_minutes 30, got %d", cfg.Schedule.SlotMinutes)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[schedule]
day_start = "08:00"
day_end = "16:00"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("FIGARO_DAY_START", "10:00")
	t.Setenv("FIGARO_API_BASE_URL", "http://staging.local/api")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Schedule.DayStart != "10:00" {
		t.Errorf("expected day_start 10:00 from env, got %s", cfg.Schedule.DayStart)
	}
	// File value should be kept when no env override
	if cfg.Schedule.DayEnd != "16:00" {
		t.Errorf("expected day_end 16:00 from file, got %s", cfg.Schedule.DayEnd)
	}
	// Env should override default
	if cfg.API.BaseURL != "http://staging.local/api" {
		t.Errorf("expected base_url from env, got %s", cfg.API.BaseURL)
	}
}

func TestValidate_InvalidDayStart(t *testing.T) {
	cfg := Default()
	cfg.Schedule.DayStart = "9:00" // Missing leading zero

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid day_start")
	}
}

func TestValidate_OutOfRangeTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "hour and minute out of range", value: "99:99"},
		{name: "hour out of range", value: "24:00"},
		{name: "minute out of range", value: "10:60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Schedule.DayStart = tt.value
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for day_start %q", tt.value)
			}
		})
	}
}

func TestValidate_DayStartAfterDayEnd(t *testing.T) {
	cfg := Default()
	cfg.Schedule.DayStart = "18:00"
	cfg.Schedule.DayEnd = "09:00"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when day_start >= day_end")
	}
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "booking.local/api"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for non-http base_url")
	}
}

func TestValidate_NonPositiveSlot(t *testing.T) {
	cfg := Default()
	cfg.Schedule.SlotMinutes = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero slot_minutes")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.Schedule.DayStart = "07:30"
	cfg.Schedule.DayEnd = "15:30"
	cfg.API.BaseURL = "http://shop.local/api"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Schedule.DayStart != "07:30" {
		t.Errorf("expected day_start 07:30, got %s", loaded.Schedule.DayStart)
	}
	if loaded.Schedule.DayEnd != "15:30" {
		t.Errorf("expected day_end 15:30, got %s", loaded.Schedule.DayEnd)
	}
	if loaded.API.BaseURL != "http://shop.local/api" {
		t.Errorf("expected saved base_url, got %s", loaded.API.BaseURL)
	}
}
