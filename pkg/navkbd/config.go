package navkbd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the keyboard section of the application settings.
type Config struct {
	Keyboard    bool   `toml:"keyboard"`
	Hangul      bool   `toml:"hangul"`
	Locale      string `toml:"locale"`
	Theme       string `toml:"theme"`
	FontPath    string `toml:"font_path"`
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	InputDevice string `toml:"input_device"`
}

func DefaultConfig() Config {
	return Config{
		Keyboard: true,
		Theme:    "day",
		LogLevel: "error",
	}
}

// LoadConfig reads a TOML file over the defaults. A missing file is not
// an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("reading keyboard config %s: %w", path, err)
	}
	return config, nil
}

// ParseConfig decodes TOML data over the defaults.
func ParseConfig(data string) (Config, error) {
	config := DefaultConfig()
	if _, err := toml.Decode(data, &config); err != nil {
		return config, fmt.Errorf("parsing keyboard config: %w", err)
	}
	return config, nil
}

// WithEnv applies environment overrides: NAVKBD_LOCALE, then LANG when no
// locale is configured, FALLBACK_FONT and NAVKBD_DEBUG.
func (c Config) WithEnv() Config {
	if v := os.Getenv("NAVKBD_LOCALE"); v != "" {
		c.Locale = v
	} else if c.Locale == "" {
		c.Locale = os.Getenv("LANG")
	}
	if v := os.Getenv("FALLBACK_FONT"); v != "" && c.FontPath == "" {
		c.FontPath = v
	}
	if os.Getenv("NAVKBD_DEBUG") != "" {
		c.LogLevel = "debug"
	}
	return c
}

func (c Config) Features() Features {
	var f Features
	if c.Hangul {
		f |= FeatureHangul
	}
	return f
}

// Options returns keyboard options for this configuration. The caller
// fills in the screen collaborators.
func (c Config) Options() Options {
	opts := Options{
		Enabled: c.Keyboard,
		Table:   NewModeTable(c.Features()),
		Locale:  c.Locale,
	}
	if c.Hangul {
		opts.Composer = NewHangulComposer()
	}
	return opts
}
