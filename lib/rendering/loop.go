package rendering

import (
	"log/slog"

	"github.com/fosdem/galaxykd/lib/metrics"
	"github.com/fosdem/galaxykd/lib/stats"
	"github.com/fosdem/galaxykd/lib/utils"
)

type LoopState int

const (
	Running LoopState = iota
	Closing
	Terminated
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Surface is the presentable window the loop draws into.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
	// Close destroys the window and its context.
	Close()
}

type Loop struct {
	renderer *Renderer
	surface  Surface
	stats    *stats.Stats

	state     LoopState
	stopwatch utils.Stopwatch
}

func NewLoop(renderer *Renderer, surface Surface, st *stats.Stats) *Loop {
	return &Loop{
		renderer: renderer,
		surface:  surface,
		stats:    st,
		state:    Running,
	}
}

func (l *Loop) State() LoopState {
	return l.state
}

// Step advances the loop by one iteration and reports whether it should be
// called again.
func (l *Loop) Step() bool {
	switch l.state {
	case Running:
		if l.surface.ShouldClose() {
			l.state = Closing
			break
		}
		l.renderer.DrawFrame()
		l.surface.SwapBuffers()
		l.surface.PollEvents()
		l.frameDone()
	case Closing:
		slog.Info("window closed, releasing resources", slog.String("module", "loop"))
		l.renderer.Release()
		l.surface.Close()
		l.state = Terminated
	}
	return l.state != Terminated
}

func (l *Loop) Run() {
	for l.Step() {
	}
}

func (l *Loop) frameDone() {
	dt := l.stopwatch.Lap()
	metrics.FramesRendered.Inc()
	if dt > 0 {
		metrics.FrameDuration.Observe(dt.Seconds())
	}
	if l.stats != nil {
		l.stats.FrameDone(dt)
	}
}
