// Example runs the overlay demo in a GLFW window with the OpenGL backend.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Settings are read from settings.toml and key bindings from keys.toml
// in the working directory; both are optional. Pass -readonly to keep
// settings.toml untouched on exit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/backend/opengl"
	"github.com/go-theft-auto/overlay/config"
	"github.com/go-theft-auto/overlay/example/demo"
)

const windowTitle = "overlay example"

var (
	settingsPath = flag.String("settings", "settings.toml", "settings file")
	keymapPath   = flag.String("keys", "keys.toml", "key bindings file")
	readOnly     = flag.Bool("readonly", false, "never write the settings file")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadKeymap(path string) (map[string]overlay.Binding, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return demo.DefaultKeymap(), nil
	}
	return config.LoadKeymap(path)
}

func run() error {
	settings, err := config.LoadSettings(*settingsPath, *readOnly)
	if err != nil {
		return err
	}
	keymap, err := loadKeymap(*keymapPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if settings.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	window, err := glfw.CreateWindow(settings.Width, settings.Height, windowTitle, monitor, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(settings.Width, settings.Height)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	app, err := demo.New(opengl.GLFWTime{}, settings.Values, keymap, overlay.MonoMetrics{})
	if err != nil {
		return err
	}
	device := opengl.NewGLFWDevice(window)

	for !app.Quit() {
		glfw.PollEvents()
		if err := app.Update(device); err != nil {
			return err
		}

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := overlay.AcquireDrawList(renderer.FontTextureID())
		app.Render(dl)
		err := renderer.Render(dl)
		overlay.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("overlay render: %w", err)
		}

		window.SwapBuffers()
	}

	settings.Width, settings.Height = window.GetSize()
	if err := settings.Save(); err != nil {
		slog.Error("save settings", "err", err)
	}
	return nil
}
