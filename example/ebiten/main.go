// Example runs the overlay demo on Ebitengine.
//
//	go run ./example/ebiten/
//
// It reads the same settings.toml and keys.toml as the GLFW example.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/overlay"
	overlayebiten "github.com/go-theft-auto/overlay/backend/ebiten"
	"github.com/go-theft-auto/overlay/config"
	"github.com/go-theft-auto/overlay/example/demo"
)

var (
	settingsPath = flag.String("settings", "settings.toml", "settings file")
	keymapPath   = flag.String("keys", "keys.toml", "key bindings file")
	readOnly     = flag.Bool("readonly", false, "never write the settings file")
)

type game struct {
	app    *demo.App
	device *overlayebiten.Device
	canvas *overlayebiten.Canvas
	time   *overlayebiten.Time
	bg     uint32
}

func (g *game) Update() error {
	g.time.Advance()
	g.device.Poll()
	if err := g.app.Update(g.device); err != nil {
		return err
	}
	if g.app.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	r, gr, b, a := overlay.UnpackRGBA(g.bg)
	screen.Fill(color.RGBA{R: r, G: gr, B: b, A: a})
	g.canvas.Target = screen
	g.app.Render(g.canvas)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings(*settingsPath, *readOnly)
	if err != nil {
		return err
	}
	keymap := demo.DefaultKeymap()
	if _, err := os.Stat(*keymapPath); !errors.Is(err, fs.ErrNotExist) {
		if keymap, err = config.LoadKeymap(*keymapPath); err != nil {
			return err
		}
	}

	canvas, err := overlayebiten.NewCanvas()
	if err != nil {
		return err
	}
	clock := &overlayebiten.Time{}
	app, err := demo.New(clock, settings.Values, keymap, canvas)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("overlay example")
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(settings.FPS)

	g := &game{
		app:    app,
		device: overlayebiten.NewDevice(),
		canvas: canvas,
		time:   clock,
		bg:     overlay.DefaultTheme().Background,
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	settings.Width, settings.Height = ebiten.WindowSize()
	if err := settings.Save(); err != nil {
		slog.Error("save settings", "err", err)
	}
	return nil
}
