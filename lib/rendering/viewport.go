package rendering

import (
	"github.com/fosdem/galaxykd/lib/gpu"
	"github.com/fosdem/galaxykd/lib/metrics"
	"github.com/fosdem/galaxykd/lib/stats"
)

// Viewport tracks the window size in pixels and keeps the GPU viewport
// covering all of it. There is no aspect correction: content is stretched.
type Viewport struct {
	Width  int
	Height int

	dev   gpu.Device
	stats *stats.Stats
}

func NewViewport(dev gpu.Device, width, height int, st *stats.Stats) *Viewport {
	return &Viewport{Width: width, Height: height, dev: dev, stats: st}
}

// Apply pushes the current size to the GPU.
func (v *Viewport) Apply() {
	v.dev.Viewport(0, 0, int32(v.Width), int32(v.Height))
	metrics.ViewportWidth.Set(float64(v.Width))
	metrics.ViewportHeight.Set(float64(v.Height))
	if v.stats != nil {
		v.stats.SetViewport(v.Width, v.Height)
	}
}

// Resize is called synchronously from event processing; the new viewport
// is in effect before the next draw call.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
	metrics.ViewportResizes.Inc()
	v.Apply()
}
