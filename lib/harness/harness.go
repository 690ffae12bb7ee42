// Package harness wires the window, the GL device and the renderer together
// and runs the render loop.
package harness

import (
	"fmt"

	"github.com/fosdem/galaxykd/lib/api"
	"github.com/fosdem/galaxykd/lib/config"
	"github.com/fosdem/galaxykd/lib/gpu/glbackend"
	"github.com/fosdem/galaxykd/lib/rendering"
	"github.com/fosdem/galaxykd/lib/stats"
	"github.com/fosdem/galaxykd/lib/window"
)

// MakeWindowAndRender opens the window and renders until it is closed. It
// must run on the main, locked OS thread.
func MakeWindowAndRender(cfg *config.Config) error {
	st := stats.New()

	win, err := window.Open(cfg.Window)
	if err != nil {
		return err
	}

	dev, err := glbackend.Init()
	if err != nil {
		win.Close()
		return fmt.Errorf("could not initialise renderer: %w", err)
	}

	renderer, err := rendering.Setup(dev, cfg, st)
	if err != nil {
		win.Close()
		return err
	}

	// the window manager may not have honoured the requested size
	width, height := win.GetSize()
	win.TrackViewport(rendering.NewViewport(dev, width, height, st))

	api.ServeInBackground(cfg, st)

	rendering.NewLoop(renderer, win, st).Run()
	return nil
}
