package ggres

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDisableGraphics, EnvWindowWidth, EnvWindowHeight, EnvWindowTitle, EnvFont} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearEnv(t)
	if got := ConfigFromEnv(); got != DefaultConfig() {
		t.Errorf("ConfigFromEnv() with empty env = %+v, want defaults", got)
	}

	t.Setenv(EnvDisableGraphics, "1")
	t.Setenv(EnvWindowWidth, "640")
	t.Setenv(EnvWindowHeight, "not a number")
	t.Setenv(EnvWindowTitle, "arrays")
	t.Setenv(EnvFont, "/fonts/mono.ttf")

	got := ConfigFromEnv()
	want := Config{
		DisableGraphics: true,
		WindowWidth:     640,
		WindowHeight:    DefaultWindowHeight,
		WindowTitle:     "arrays",
		FontPath:        "/fonts/mono.ttf",
	}
	if got != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", got, want)
	}
}

func TestDisableGraphicsEmptyValue(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDisableGraphics, "")
	if ConfigFromEnv().DisableGraphics {
		t.Error("empty GGRES_DISABLE_GRAPHICS disabled graphics")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"800", 800},
		{"0", 7},
		{"-5", 7},
		{"", 7},
		{"12px", 7},
	}
	for _, tt := range tests {
		if got := parseSize(tt.in, 7); got != tt.want {
			t.Errorf("parseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "ggres.env")
	data := "GGRES_WINDOW_WIDTH=300\nGGRES_WINDOW_HEIGHT=200\nGGRES_WINDOW_TITLE=from file\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	// Process environment wins over the file.
	t.Setenv(EnvWindowTitle, "from env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.WindowWidth != 300 || cfg.WindowHeight != 200 {
		t.Errorf("size = %dx%d, want 300x200", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.WindowTitle != "from env" {
		t.Errorf("WindowTitle = %q, want %q", cfg.WindowTitle, "from env")
	}
	if _, ok := os.LookupEnv(EnvWindowWidth); ok {
		t.Error("LoadConfig() modified the process environment")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("LoadConfig(missing) error = nil")
	}
}

func TestLoadConfigNoDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() without .env error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}
