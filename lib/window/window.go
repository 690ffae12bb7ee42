// Package window owns the GLFW window and its GL context.
package window

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/fosdem/galaxykd/lib/config"
	"github.com/fosdem/galaxykd/lib/rendering"
	"github.com/go-gl/glfw/v3.3/glfw"
	gopointer "github.com/mattn/go-pointer"
)

type Window struct {
	*glfw.Window

	viewport *rendering.Viewport
	self     unsafe.Pointer
}

var _ rendering.Surface = (*Window)(nil)

// Open initialises GLFW and creates a window with a current OpenGL 4.1 core
// context. It must be called from the main, locked OS thread.
func Open(cfg *config.WindowCfg) (*Window, error) {
	log("Initializing window")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window.MakeContextCurrent()
	if cfg.Vsync != nil && !*cfg.Vsync {
		glfw.SwapInterval(0)
	} else {
		glfw.SwapInterval(1)
	}

	log("Window %q created (%dx%d)", cfg.Title, cfg.Width, cfg.Height)
	return &Window{Window: window}, nil
}

// TrackViewport registers the resize handler and applies the initial
// viewport. It is meant to be called once, before the render loop starts.
func (w *Window) TrackViewport(viewport *rendering.Viewport) {
	w.viewport = viewport
	if w.self == nil {
		w.self = gopointer.Save(w)
		w.SetUserPointer(w.self)
	}
	w.SetSizeCallback(sizeCallback)
	viewport.Apply()
}

func sizeCallback(gw *glfw.Window, width, height int) {
	w, ok := gopointer.Restore(gw.GetUserPointer()).(*Window)
	if !ok || w.viewport == nil {
		return
	}
	slog.Debug(fmt.Sprintf("resized to %dx%d", width, height), slog.String("module", "window"))
	w.viewport.Resize(width, height)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and shuts GLFW down.
func (w *Window) Close() {
	w.SetSizeCallback(nil)
	if w.self != nil {
		gopointer.Unref(w.self)
		w.self = nil
	}
	w.Destroy()
	glfw.Terminate()
}

func log(msg string, args ...interface{}) {
	slog.Info(fmt.Sprintf(msg, args...), slog.String("module", "window"))
}
