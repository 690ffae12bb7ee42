package rendering

import (
	"github.com/fosdem/galaxykd/lib/geometry"
	"github.com/fosdem/galaxykd/lib/gpu"
	"github.com/fosdem/galaxykd/lib/metrics"
	"github.com/fosdem/galaxykd/lib/rendering/shaders"
	"github.com/fosdem/galaxykd/lib/stats"
	"github.com/go-gl/mathgl/mgl32"
)

type Renderer struct {
	Geometry *geometry.Geometry

	GridProgram shaders.Program
	ShipProgram shaders.Program

	BGColour mgl32.Vec4

	// ReuploadStatic re-sends every buffer before drawing it, even though
	// the geometry never changes.
	ReuploadStatic bool

	// GL IDs
	VAO        uint32
	Vertical   *VertexBuffer
	Horizontal *VertexBuffer
	Ship       *VertexBuffer

	dev   gpu.Device
	stats *stats.Stats
}

func NewRenderer(dev gpu.Device, geom *geometry.Geometry, grid, ship shaders.Program, bgColour mgl32.Vec4, st *stats.Stats) *Renderer {
	return &Renderer{
		Geometry:       geom,
		GridProgram:    grid,
		ShipProgram:    ship,
		BGColour:       bgColour,
		ReuploadStatic: true,
		dev:            dev,
		stats:          st,
	}
}

// Start allocates the vertex array and buffers and does the initial upload.
func (r *Renderer) Start() {
	r.VAO = r.dev.GenVertexArray()
	r.dev.BindVertexArray(r.VAO)

	r.Ship = NewVertexBuffer(r.dev, "ship", r.stats)
	r.Ship.Upload(r.Geometry.Ship)
	r.Vertical = NewVertexBuffer(r.dev, "grid_vertical", r.stats)
	r.Vertical.Upload(r.Geometry.Vertical)
	r.Horizontal = NewVertexBuffer(r.dev, "grid_horizontal", r.stats)
	r.Horizontal.Upload(r.Geometry.Horizontal)

	r.dev.ClearColor(r.BGColour[0], r.BGColour[1], r.BGColour[2], r.BGColour[3])
}

// DrawFrame clears the surface and draws the grid, then the ship. It does
// not present the frame.
func (r *Renderer) DrawFrame() {
	r.dev.BindVertexArray(r.VAO)
	r.dev.Clear()

	r.dev.UseProgram(r.GridProgram.ID)
	r.draw(r.GridProgram, r.Vertical, r.Geometry.Vertical, gpu.Lines)
	r.draw(r.GridProgram, r.Horizontal, r.Geometry.Horizontal, gpu.Lines)

	r.dev.UseProgram(r.ShipProgram.ID)
	r.draw(r.ShipProgram, r.Ship, r.Geometry.Ship, gpu.Triangles)
}

func (r *Renderer) draw(program shaders.Program, buffer *VertexBuffer, vertices geometry.Vertices, mode gpu.Primitive) {
	if r.ReuploadStatic {
		buffer.Upload(vertices)
	} else {
		buffer.Bind()
	}
	r.dev.DrawArrays(mode, 0, buffer.Count)
	metrics.DrawCalls.WithLabelValues(program.Name).Inc()
}

// Release deletes the programs first, then the vertex data.
func (r *Renderer) Release() {
	r.dev.DeleteProgram(r.ShipProgram.ID)
	r.dev.DeleteProgram(r.GridProgram.ID)

	for _, b := range []*VertexBuffer{r.Ship, r.Vertical, r.Horizontal} {
		if b != nil {
			b.Delete()
		}
	}
	if r.VAO != 0 {
		r.dev.DeleteVertexArray(r.VAO)
		r.VAO = 0
	}
}
