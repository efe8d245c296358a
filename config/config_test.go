package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	s, err := LoadSettings(path, true)
	require.NoError(t, err)
	require.Equal(t, Defaults(), s.Values)
	require.True(t, s.ReadOnly())
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := writeFile(t, "settings.toml", "fps = 144\ntext_size = 16\nverbose = true\n")

	s, err := LoadSettings(path, false)
	require.NoError(t, err)
	require.Equal(t, 144, s.FPS)
	require.Equal(t, 16, s.TextSize)
	require.True(t, s.Verbose)
	require.InDelta(t, 0.1, s.FPSFilter, 1e-9, "missing keys keep defaults")
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.toml")

	s, err := LoadSettings(path, false)
	require.NoError(t, err)
	s.FPS = 30
	s.Fullscreen = true
	s.FPSFilter = 0.25
	require.NoError(t, s.Save())

	again, err := LoadSettings(path, false)
	require.NoError(t, err)
	require.Equal(t, s.Values, again.Values)
}

func TestReadOnlySaveWarns(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := LoadSettings(path, true, WithLogger(log))
	require.NoError(t, err)
	s.FPS = 10
	require.NoError(t, s.Save())

	require.Contains(t, buf.String(), "read only")
	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEval(t *testing.T) {
	names := map[string]float64{"WIDTH": 1920, "gap": 8}
	lookup := func(n string) (float64, bool) {
		v, ok := names[n]
		return v, ok
	}

	cases := []struct {
		src  string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"WIDTH / 2 - gap", 952},
		{"-gap * 2", -16},
		{"10 / 4", 2.5},
		{"+3 - -2", 5},
	}
	for _, tc := range cases {
		got, err := Eval(tc.src, lookup)
		require.NoError(t, err, tc.src)
		require.InDelta(t, tc.want, got, 1e-9, tc.src)
	}

	_, err := Eval("1 / (gap - 8)", lookup)
	require.ErrorIs(t, err, ErrDivByZero)

	_, err = Eval("HEIGHT - 1", lookup)
	require.ErrorIs(t, err, ErrUnknownName)

	_, err = Eval("(1 + 2", lookup)
	require.ErrorIs(t, err, ErrSyntax)

	_, err = Eval("1 2", lookup)
	require.ErrorIs(t, err, ErrSyntax)
}

type windowLayout struct {
	Pos   overlay.Vec2  `toml:"pos"`
	Size  overlay.Vec2  `toml:"size"`
	Rect  overlay.Rect  `toml:"rect"`
	Align overlay.Align `toml:"align"`
	Color uint32        `toml:"color"`
}

type testLayout struct {
	Margin float64      `toml:"margin"`
	Title  string       `toml:"title"`
	Panel  uint32       `toml:"panel"`
	Window windowLayout `toml:"window"`
}

func TestLoadLayout(t *testing.T) {
	path := writeFile(t, "layout.toml", `
margin = 10
title = "Debug - Panel"
panel = [40, 50, 60]

[window]
pos = ["WIDTH / 2 - margin", 20]
size = [300, "HEIGHT - 2 * margin"]
rect = [0, 0, "margin * 3", 5]
align = "center"
color = "panel"
`)

	var got testLayout
	err := LoadLayout(path, map[string]float64{"WIDTH": 1280, "HEIGHT": 720}, &got)
	require.NoError(t, err)

	require.Equal(t, 10.0, got.Margin)
	require.Equal(t, "Debug - Panel", got.Title)
	require.Equal(t, overlay.RGBA(40, 50, 60, 255), got.Panel)
	require.Equal(t, overlay.Vec2{X: 630, Y: 20}, got.Window.Pos)
	require.Equal(t, overlay.Vec2{X: 300, Y: 700}, got.Window.Size)
	require.Equal(t, overlay.Rect{W: 30, H: 5}, got.Window.Rect)
	require.Equal(t, overlay.AlignCenter, got.Window.Align)
	require.Equal(t, got.Panel, got.Window.Color)
}

func TestLoadLayoutBadColor(t *testing.T) {
	path := writeFile(t, "colors.toml", "panel = [1, 2]\n")

	var got testLayout
	require.Error(t, LoadLayout(path, nil, &got))
}

func TestLoadKeymap(t *testing.T) {
	path := writeFile(t, "keys.toml", `
[menu]
key = "escape"

[down]
key = "Down"
delay = 300
period = 50
`)

	km, err := LoadKeymap(path)
	require.NoError(t, err)
	require.Equal(t, overlay.Binding{Key: overlay.KeyEscape}, km["menu"])
	require.Equal(t, overlay.Binding{Key: overlay.KeyDown, Delay: 300, Period: 50}, km["down"])
}

func TestLoadKeymapUnknownKey(t *testing.T) {
	path := writeFile(t, "keys.json", `{"jump": {"key": "hyperspace"}}`)

	_, err := LoadKeymap(path)
	require.ErrorIs(t, err, ErrUnknownKey)
}
