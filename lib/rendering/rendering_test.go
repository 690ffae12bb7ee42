package rendering

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/fosdem/galaxykd/lib/geometry"
	"github.com/fosdem/galaxykd/lib/gpu/gputest"
	"github.com/fosdem/galaxykd/lib/rendering/shaders"
	"github.com/fosdem/galaxykd/lib/stats"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeSurface struct {
	dev        *gputest.Recorder
	closeAfter int
	frames     int
	onPoll     func(frame int)
	closed     bool
}

func (s *fakeSurface) ShouldClose() bool {
	return s.frames >= s.closeAfter
}

func (s *fakeSurface) SwapBuffers() {
	s.frames++
	s.dev.Calls = append(s.dev.Calls, "SwapBuffers()")
}

func (s *fakeSurface) PollEvents() {
	if s.onPoll != nil {
		s.onPoll(s.frames)
	}
}

func (s *fakeSurface) Close() {
	s.closed = true
	s.dev.Calls = append(s.dev.Calls, "Close()")
}

func newTestRenderer(t *testing.T, dev *gputest.Recorder) *Renderer {
	t.Helper()
	shaderer, err := shaders.NewShaderer()
	if err != nil {
		t.Fatalf("could not load shaders: %s", err)
	}
	grid, err := shaders.Build(dev, shaderer, "grid", mgl32.Vec4{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("could not build grid program: %s", err)
	}
	ship, err := shaders.Build(dev, shaderer, "ship", mgl32.Vec4{1, 0, 0, 1})
	if err != nil {
		t.Fatalf("could not build ship program: %s", err)
	}
	geom := geometry.GridSpec{Lanes: 5, Rows: 3}.Build()
	r := NewRenderer(dev, geom, grid, ship, mgl32.Vec4{0, 0, 0, 1}, stats.New())
	r.Start()
	return r
}

// frames splits the recorded calls at each presented frame.
func frames(calls []string) [][]string {
	var out [][]string
	start := 0
	for i, c := range calls {
		if c == "SwapBuffers()" {
			out = append(out, calls[start:i+1])
			start = i + 1
		}
	}
	return out
}

func filter(calls []string, prefixes ...string) []string {
	var out []string
	for _, c := range calls {
		for _, p := range prefixes {
			if strings.HasPrefix(c, p) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func TestUploadLayout(t *testing.T) {
	dev := gputest.NewRecorder()
	b := NewVertexBuffer(dev, "ship", nil)
	b.Upload(geometry.Ship())

	if b.Count != 3 {
		t.Errorf("expected 3 vertices, got %d", b.Count)
	}
	if got := dev.Buffers[b.ID]; !slices.Equal(got, geometry.Ship().Floats()) {
		t.Errorf("buffer holds %v", got)
	}
	a := dev.Attribs[PositionAttrib]
	if a == nil || a.Buffer != b.ID || a.Size != 2 || a.Stride != 8 || a.Offset != 0 || !a.Enabled {
		t.Errorf("unexpected attribute layout %+v", a)
	}

	b.Upload(geometry.VerticalLines(2))
	if b.Count != 6 || len(dev.Buffers[b.ID]) != 12 {
		t.Errorf("upload should replace the full contents, got %d vertices / %v", b.Count, dev.Buffers[b.ID])
	}
}

func TestDrawFrameSequence(t *testing.T) {
	dev := gputest.NewRecorder()
	r := newTestRenderer(t, dev)
	dev.Reset()

	r.DrawFrame()

	grid, ship := r.GridProgram.ID, r.ShipProgram.ID
	got := filter(dev.Calls, "Clear()", "UseProgram", "DrawArrays")
	want := []string{
		"Clear()",
		"UseProgram(" + itoa(grid) + ")",
		"DrawArrays(lines, 0, 12) program=" + itoa(grid),
		"DrawArrays(lines, 0, 8) program=" + itoa(grid),
		"UseProgram(" + itoa(ship) + ")",
		"DrawArrays(triangles, 0, 3) program=" + itoa(ship),
	}
	if !slices.Equal(got, want) {
		t.Errorf("unexpected draw sequence:\n%s\nexpected:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if n := dev.Count("BufferStaticData"); n != 3 {
		t.Errorf("expected 3 uploads per frame, got %d", n)
	}
}

func TestDrawFrameWithoutReupload(t *testing.T) {
	dev := gputest.NewRecorder()
	r := newTestRenderer(t, dev)
	r.ReuploadStatic = false
	dev.Reset()

	r.DrawFrame()

	if n := dev.Count("BufferStaticData"); n != 0 {
		t.Errorf("expected no uploads, got %d", n)
	}
	if n := dev.Count("DrawArrays"); n != 3 {
		t.Errorf("expected 3 draw calls, got %d", n)
	}
	if n := dev.Count("BindArrayBuffer"); n != 3 {
		t.Errorf("expected every buffer to be bound, got %d", n)
	}
}

func TestLoopIdenticalFrames(t *testing.T) {
	dev := gputest.NewRecorder()
	r := newTestRenderer(t, dev)
	viewport := NewViewport(dev, 640, 480, nil)
	viewport.Apply()
	dev.Reset()

	surface := &fakeSurface{dev: dev, closeAfter: 5}
	loop := NewLoop(r, surface, stats.New())
	loop.Run()

	fs := frames(dev.Calls)
	if len(fs) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(fs))
	}
	for i := 1; i < len(fs); i++ {
		if !slices.Equal(fs[0], fs[i]) {
			t.Errorf("frame %d differs from frame 0:\n%s\nvs\n%s", i, strings.Join(fs[i], "\n"), strings.Join(fs[0], "\n"))
		}
	}
	if viewport.Width != 640 || viewport.Height != 480 || dev.Count("Viewport") != 0 {
		t.Errorf("viewport changed without a resize: %dx%d", viewport.Width, viewport.Height)
	}
}

func TestLoopStates(t *testing.T) {
	dev := gputest.NewRecorder()
	r := newTestRenderer(t, dev)
	surface := &fakeSurface{dev: dev, closeAfter: 1}
	loop := NewLoop(r, surface, nil)

	if loop.State() != Running {
		t.Fatalf("loop should start running, got %s", loop.State())
	}
	if !loop.Step() || loop.State() != Running {
		t.Fatalf("first step should draw a frame")
	}
	if !loop.Step() || loop.State() != Closing {
		t.Fatalf("close signal should move the loop to closing, got %s", loop.State())
	}
	if surface.closed {
		t.Fatalf("surface should not be closed before termination")
	}

	dev.Reset()
	if loop.Step() || loop.State() != Terminated {
		t.Fatalf("closing should lead to terminated, got %s", loop.State())
	}
	if loop.Step() {
		t.Errorf("a terminated loop should not continue")
	}

	order := filter(dev.Calls, "DeleteProgram", "Close()")
	want := []string{
		"DeleteProgram(" + itoa(r.ShipProgram.ID) + ")",
		"DeleteProgram(" + itoa(r.GridProgram.ID) + ")",
		"Close()",
	}
	if !slices.Equal(order, want) {
		t.Errorf("unexpected release order %v", order)
	}
	if len(dev.Buffers) != 0 {
		t.Errorf("buffers left after release: %v", dev.Buffers)
	}
}

func TestResizeDuringEvents(t *testing.T) {
	dev := gputest.NewRecorder()
	r := newTestRenderer(t, dev)
	st := stats.New()
	viewport := NewViewport(dev, 640, 480, st)
	viewport.Apply()

	surface := &fakeSurface{dev: dev, closeAfter: 3}
	surface.onPoll = func(frame int) {
		if frame == 1 {
			viewport.Resize(1024, 768)
			if dev.ViewportRect != [4]int32{0, 0, 1024, 768} {
				t.Errorf("resize should take effect immediately, got %v", dev.ViewportRect)
			}
		}
	}
	NewLoop(r, surface, st).Run()

	if viewport.Width != 1024 || viewport.Height != 768 {
		t.Errorf("unexpected viewport %dx%d", viewport.Width, viewport.Height)
	}
	if n := dev.Count("Viewport("); n != 2 {
		t.Errorf("expected initial and resize viewport calls, got %d", n)
	}
	snap := st.Current()
	if snap.ViewportWidth != 1024 || snap.ViewportHeight != 768 || snap.Frames != 3 {
		t.Errorf("unexpected stats %+v", snap)
	}
}

func TestFailedProgramIsStillUsed(t *testing.T) {
	dev := gputest.NewRecorder()
	dev.FailLinks = true
	shaderer, _ := shaders.NewShaderer()
	ship, err := shaders.Build(dev, shaderer, "ship", mgl32.Vec4{1, 0, 0, 1})
	if err == nil {
		t.Fatalf("expected link failure")
	}
	r := NewRenderer(dev, geometry.GridSpec{Lanes: 1, Rows: 1}.Build(), ship, ship, mgl32.Vec4{}, nil)
	r.Start()
	dev.Reset()

	r.DrawFrame()
	if n := dev.Count("DrawArrays(triangles, 0, 3) program=" + itoa(ship.ID)); n != 1 {
		t.Errorf("expected the ship to be drawn with the unlinked program, got %d", n)
	}
}

func itoa(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}
