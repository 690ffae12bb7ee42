package rendering

import (
	"github.com/fosdem/galaxykd/lib/geometry"
	"github.com/fosdem/galaxykd/lib/gpu"
	"github.com/fosdem/galaxykd/lib/metrics"
	"github.com/fosdem/galaxykd/lib/stats"
)

const f32 = 4

// PositionAttrib is the attribute slot the vertex shader reads its
// position from.
const PositionAttrib = 0

// VertexBuffer is a GPU array buffer holding 2D float32 vertices.
type VertexBuffer struct {
	ID    uint32
	Name  string
	Count int32

	dev     gpu.Device
	stats   *stats.Stats
	metrics metrics.BufferMetrics
}

func NewVertexBuffer(dev gpu.Device, name string, st *stats.Stats) *VertexBuffer {
	return &VertexBuffer{
		ID:      dev.GenBuffer(),
		Name:    name,
		dev:     dev,
		stats:   st,
		metrics: metrics.NewBufferMetrics(name),
	}
}

// Upload replaces the full contents of the buffer with vertices and points
// the position attribute at it.
func (b *VertexBuffer) Upload(vertices geometry.Vertices) {
	data := vertices.Floats()

	b.dev.BindArrayBuffer(b.ID)
	b.dev.BufferStaticData(data)
	b.setLayout()
	b.Count = vertices.Count()

	size := len(data) * f32
	b.metrics.Uploads.Inc()
	b.metrics.Bytes.Add(float64(size))
	if b.stats != nil {
		b.stats.Uploaded(size)
	}
}

// Bind makes the buffer current without touching its contents.
func (b *VertexBuffer) Bind() {
	b.dev.BindArrayBuffer(b.ID)
	b.setLayout()
}

// setLayout declares tightly packed (x, y) float pairs at offset 0.
func (b *VertexBuffer) setLayout() {
	b.dev.VertexAttribFloats(PositionAttrib, 2, 2*f32, 0)
	b.dev.EnableVertexAttribArray(PositionAttrib)
}

func (b *VertexBuffer) Delete() {
	b.dev.DeleteBuffer(b.ID)
	b.ID = 0
	b.Count = 0
}
