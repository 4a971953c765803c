package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/pinpad/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {
	t.Run("empty data yields defaults", func(t *testing.T) {
		cfg, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(""))
		require.NoError(t, err)
		assert.Equal(t, config.Default(config.Dark), cfg)
	})

	t.Run("pads replace default pads", func(t *testing.T) {
		data := []byte(`
pads:
  - name: short
    secret: "42"
    secure-glyphs:
      - { rune: "A", fg: "#ffffff", bg: "#000000" }
      - { rune: "B", fg: "#ffffff", bg: "#000000" }
    empty-glyph: { rune: ".", fg: "#ffffff", bg: "#000000" }
    mask-delay: 50ms
    keyboard-enabled: false
`)
		cfg, err := config.ParseConfigAugmentDefaults(config.Dark, data)
		require.NoError(t, err)
		require.Len(t, cfg.Pads, 1)

		pad := cfg.Pads[0]
		assert.Equal(t, "short", pad.Name)
		assert.Equal(t, "42", pad.Secret)
		assert.Len(t, pad.SecureGlyphs, 2)
		assert.Equal(t, "50ms", pad.MaskDelay)
		require.NotNil(t, pad.KeyboardEnabled)
		assert.False(t, *pad.KeyboardEnabled)
		assert.Nil(t, pad.SuccessGlyph)
	})

	t.Run("keys are merged", func(t *testing.T) {
		data := []byte(`
keys:
  "<c-x>": clear
  "<esc>": reset
`)
		cfg, err := config.ParseConfigAugmentDefaults(config.Dark, data)
		require.NoError(t, err)
		assert.Equal(t, "clear", cfg.Keys["<c-x>"])
		assert.Equal(t, "reset", cfg.Keys["<esc>"])
		assert.Equal(t, "delete-symbol", cfg.Keys["<bs>"])
	})

	t.Run("partial styling is ignored", func(t *testing.T) {
		data := []byte(`
stylesheet:
  pad: { fg: "#123456" }
  status: { fg: "#111111", bg: "#222222" }
`)
		cfg, err := config.ParseConfigAugmentDefaults(config.Light, data)
		require.NoError(t, err)
		assert.Equal(t, config.Default(config.Light).Stylesheet.Pad, cfg.Stylesheet.Pad)
		assert.Equal(t, "#111111", cfg.Stylesheet.Status.Fg)
		assert.Equal(t, "#222222", cfg.Stylesheet.Status.Bg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("pads: [ {"))
		assert.Error(t, err)
	})
}

func TestParseTOMLConfigAugmentDefaults(t *testing.T) {
	data := []byte(`
[keys]
"<c-x>" = "clear"

[[pads]]
name = "toml"
secret = "xy"
mask-delay = "1s"
empty-glyph = { rune = "_", fg = "#ffffff", bg = "#000000" }

  [[pads.secure-glyphs]]
  rune = "X"
  fg = "#ffffff"
  bg = "#000000"

  [[pads.secure-glyphs]]
  rune = "Y"
  fg = "#ffffff"
  bg = "#000000"

  [pads.shadow]
  color = "#ff0000"
  opacity = 0.25
`)
	cfg, err := config.ParseTOMLConfigAugmentDefaults(config.Dark, data)
	require.NoError(t, err)
	require.Len(t, cfg.Pads, 1)

	pad := cfg.Pads[0]
	assert.Equal(t, "toml", pad.Name)
	assert.Len(t, pad.SecureGlyphs, 2)
	require.NotNil(t, pad.Shadow)
	assert.Equal(t, "#ff0000", pad.Shadow.Color)
	require.NotNil(t, pad.Shadow.Opacity)
	assert.InDelta(t, 0.25, *pad.Shadow.Opacity, 1e-9)
	assert.Equal(t, "clear", cfg.Keys["<c-x>"])

	_, err = config.ParseTOMLConfigAugmentDefaults(config.Dark, []byte("pads = ["))
	assert.Error(t, err)
}

func TestPadByName(t *testing.T) {
	cfg := config.Default(config.Dark)

	pad, err := cfg.PadByName("")
	require.NoError(t, err)
	assert.Equal(t, "pin", pad.Name)

	pad, err = cfg.PadByName("password")
	require.NoError(t, err)
	assert.Equal(t, "company", pad.Secret)

	_, err = cfg.PadByName("nope")
	assert.Error(t, err)

	_, err = config.Config{}.PadByName("")
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "config.yaml"), config.ResolvePath(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), nil, 0o644))
	assert.Equal(t, filepath.Join(dir, "config.toml"), config.ResolvePath(dir))
}

func TestLoader(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		loader := config.NewLoader(filepath.Join(t.TempDir(), "config.yaml"), config.Dark)
		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, config.Default(config.Dark), cfg)
	})

	t.Run("loads by extension", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[keys]\n\"<c-x>\" = \"quit\"\n"), 0o644))

		loader := config.NewLoader(path, config.Dark)
		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, "quit", cfg.Keys["<c-x>"])
		assert.Equal(t, "quit", loader.Config().Keys["<c-x>"])
	})

	t.Run("reloads on change", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("keys: {}\n"), 0o644))

		loader := config.NewLoader(path, config.Dark)
		_, err := loader.Load()
		require.NoError(t, err)

		changed := make(chan config.Config, 1)
		loader.OnChange(func(c config.Config) {
			select {
			case changed <- c:
			default:
			}
		})
		require.NoError(t, loader.Watch(context.Background()))
		defer loader.Close()

		require.NoError(t, os.WriteFile(path, []byte("keys:\n  \"<c-x>\": reset\n"), 0o644))

		select {
		case c := <-changed:
			assert.Equal(t, "reset", c.Keys["<c-x>"])
		case err := <-loader.Errors():
			t.Fatalf("unexpected watcher error: %s", err)
		case <-time.After(5 * time.Second):
			t.Fatal("config change not picked up")
		}
	})
}
