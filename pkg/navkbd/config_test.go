package navkbd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	config, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navkbd.toml")
	data := `
keyboard = true
hangul = true
locale = "ko_KR.UTF-8"
theme = "night"
log_level = "debug"
input_device = "/dev/input/event3"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, config.Hangul)
	assert.Equal(t, "ko_KR.UTF-8", config.Locale)
	assert.Equal(t, "night", config.Theme)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "/dev/input/event3", config.InputDevice)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig("keyboard = ")
	assert.Error(t, err)
}

func TestParseConfig_KeepsDefaults(t *testing.T) {
	config, err := ParseConfig(`locale = "RU"`)
	require.NoError(t, err)
	assert.True(t, config.Keyboard)
	assert.Equal(t, "day", config.Theme)
	assert.Equal(t, "RU", config.Locale)
}

func TestConfig_WithEnv(t *testing.T) {
	t.Setenv("NAVKBD_LOCALE", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	t.Setenv("FALLBACK_FONT", "/fonts/fallback.ttf")
	t.Setenv("NAVKBD_DEBUG", "1")

	config := DefaultConfig().WithEnv()
	assert.Equal(t, "de_DE.UTF-8", config.Locale)
	assert.Equal(t, "/fonts/fallback.ttf", config.FontPath)
	assert.Equal(t, "debug", config.LogLevel)

	t.Setenv("NAVKBD_LOCALE", "BY")
	config = Config{Locale: "US"}.WithEnv()
	assert.Equal(t, "BY", config.Locale)
}

func TestConfig_Options(t *testing.T) {
	opts := Config{Keyboard: true, Hangul: true, Locale: "KR"}.Options()
	assert.True(t, opts.Enabled)
	assert.True(t, opts.Table.Has(FamilyHangul))
	assert.IsType(t, &HangulComposer{}, opts.Composer)
	assert.Equal(t, "KR", opts.Locale)

	opts = Config{}.Options()
	assert.False(t, opts.Enabled)
	assert.False(t, opts.Table.Has(FamilyHangul))
	assert.Nil(t, opts.Composer)
}
