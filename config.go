package ggres

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv and LoadConfig.
const (
	// EnvDisableGraphics disables main window creation when set to any
	// non-empty value. It is read into Config and read again from the
	// process environment each time a main window is about to be created.
	EnvDisableGraphics = "GGRES_DISABLE_GRAPHICS"

	EnvWindowWidth  = "GGRES_WINDOW_WIDTH"
	EnvWindowHeight = "GGRES_WINDOW_HEIGHT"
	EnvWindowTitle  = "GGRES_WINDOW_TITLE"

	// EnvFont is the path of a TrueType/OpenType file used instead of the
	// embedded Go font.
	EnvFont = "GGRES_FONT"
)

// Default configuration values.
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "ggres"
)

// Config controls how session resources are created.
type Config struct {
	// DisableGraphics makes MainWindow fail with ErrGraphicsDisabled
	// instead of creating a window.
	DisableGraphics bool

	// Main window size and title.
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// FontPath selects the session font. Empty means the embedded Go font.
	FontPath string
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		WindowTitle:  DefaultWindowTitle,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by the process environment.
func ConfigFromEnv() Config {
	return configFrom(os.LookupEnv)
}

// LoadConfig reads .env-style files and returns the resulting
// configuration. Files do not modify the process environment, and process
// variables take precedence over file values. With no arguments LoadConfig
// reads ./.env if it exists.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return ConfigFromEnv(), nil
		}
		files = []string{".env"}
	}
	vars, err := godotenv.Read(files...)
	if err != nil {
		return Config{}, fmt.Errorf("ggres: load config: %w", err)
	}
	return configFrom(func(k string) (string, bool) {
		if v, ok := os.LookupEnv(k); ok {
			return v, true
		}
		v, ok := vars[k]
		return v, ok
	}), nil
}

func configFrom(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()
	if v, ok := lookup(EnvDisableGraphics); ok && v != "" {
		cfg.DisableGraphics = true
	}
	if v, ok := lookup(EnvWindowWidth); ok {
		cfg.WindowWidth = parseSize(v, DefaultWindowWidth)
	}
	if v, ok := lookup(EnvWindowHeight); ok {
		cfg.WindowHeight = parseSize(v, DefaultWindowHeight)
	}
	if v, ok := lookup(EnvWindowTitle); ok && v != "" {
		cfg.WindowTitle = v
	}
	if v, ok := lookup(EnvFont); ok {
		cfg.FontPath = v
	}
	return cfg
}

// graphicsDisabledByEnv reports whether EnvDisableGraphics is currently set
// in the process environment.
func graphicsDisabledByEnv() bool {
	v, ok := os.LookupEnv(EnvDisableGraphics)
	return ok && v != ""
}

// parseSize parses a positive pixel size. Returns def if invalid.
func parseSize(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
