// Package gpu describes the subset of the GPU API the renderer needs.
//
// Handles are the raw object names handed out by the driver; 0 is never a
// valid object and is used as the "no object" sentinel throughout.
package gpu

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

type Primitive int

const (
	Lines Primitive = iota
	Triangles
)

func (p Primitive) String() string {
	switch p {
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	default:
		return "unknown"
	}
}

// Device is implemented by glbackend for a real context and by
// gputest.Recorder in tests. All methods must be called from the thread
// that owns the context.
type Device interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// BufferStaticData replaces the whole store of the bound array buffer.
	BufferStaticData(data []float32)
	DeleteBuffer(buffer uint32)

	// VertexAttribFloats declares attribute index as size tightly packed,
	// non-normalised float32 components per vertex.
	VertexAttribFloats(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawArrays(mode Primitive, first, count int32)
}
