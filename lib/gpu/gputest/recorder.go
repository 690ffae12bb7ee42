// Package gputest provides a gpu.Device that records every call instead of
// talking to a driver.
package gputest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fosdem/galaxykd/lib/gpu"
)

type Shader struct {
	Stage    gpu.ShaderStage
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

type Program struct {
	Attached []uint32
	Linked   bool
	Log      string
	Deleted  bool
}

type Attrib struct {
	Buffer  uint32
	Size    int32
	Stride  int32
	Offset  uintptr
	Enabled bool
}

// Recorder is a fake gpu.Device. Compilation fails for sources without a
// main function or with unbalanced braces, mimicking a driver syntax error.
type Recorder struct {
	Calls []string

	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32][]float32
	Attribs  map[uint32]*Attrib

	BoundBuffer   uint32
	BoundVAO      uint32
	ActiveProgram uint32
	ViewportRect  [4]int32

	// FailLinks makes every link fail even with valid stages.
	FailLinks bool

	nextID uint32
}

var _ gpu.Device = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		Shaders:  make(map[uint32]*Shader),
		Programs: make(map[uint32]*Program),
		Buffers:  make(map[uint32][]float32),
		Attribs:  make(map[uint32]*Attrib),
	}
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

// Reset forgets the recorded calls but keeps object state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Count returns how many recorded calls start with prefix.
func (r *Recorder) Count(prefix string) int {
	n := 0
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *Recorder) CreateShader(stage gpu.ShaderStage) uint32 {
	id := r.id()
	r.Shaders[id] = &Shader{Stage: stage}
	r.record("CreateShader(%s) = %d", stage, id)
	return id
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	if s, ok := r.Shaders[shader]; ok {
		s.Source = source
	}
	r.record("ShaderSource(%d)", shader)
}

func (r *Recorder) CompileShader(shader uint32) {
	r.record("CompileShader(%d)", shader)
	s, ok := r.Shaders[shader]
	if !ok {
		return
	}
	switch {
	case !strings.Contains(s.Source, "void main"):
		s.Log = "0:1(1): error: no function main"
	case strings.Count(s.Source, "{") != strings.Count(s.Source, "}"):
		s.Log = "0:1(1): error: syntax error, unexpected end of file"
	default:
		s.Compiled = true
		s.Log = ""
	}
}

func (r *Recorder) ShaderCompiled(shader uint32) bool {
	s, ok := r.Shaders[shader]
	return ok && s.Compiled
}

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	if s, ok := r.Shaders[shader]; ok {
		return s.Log
	}
	return ""
}

func (r *Recorder) DeleteShader(shader uint32) {
	if s, ok := r.Shaders[shader]; ok {
		s.Deleted = true
	}
	r.record("DeleteShader(%d)", shader)
}

func (r *Recorder) CreateProgram() uint32 {
	id := r.id()
	r.Programs[id] = &Program{}
	r.record("CreateProgram() = %d", id)
	return id
}

func (r *Recorder) AttachShader(program, shader uint32) {
	if p, ok := r.Programs[program]; ok {
		p.Attached = append(p.Attached, shader)
	}
	r.record("AttachShader(%d, %d)", program, shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram(%d)", program)
	p, ok := r.Programs[program]
	if !ok {
		return
	}
	stages := make(map[gpu.ShaderStage]bool)
	for _, id := range p.Attached {
		s, ok := r.Shaders[id]
		if !ok || !s.Compiled {
			continue
		}
		stages[s.Stage] = true
	}
	switch {
	case r.FailLinks:
		p.Log = "error: linking with uncompiled/unspecialized shader"
	case !stages[gpu.VertexStage] || !stages[gpu.FragmentStage]:
		p.Log = "error: program lacks a compiled vertex or fragment shader"
	default:
		p.Linked = true
		p.Log = ""
	}
}

func (r *Recorder) ValidateProgram(program uint32) {
	r.record("ValidateProgram(%d)", program)
}

func (r *Recorder) ProgramLinked(program uint32) bool {
	p, ok := r.Programs[program]
	return ok && p.Linked
}

func (r *Recorder) ProgramInfoLog(program uint32) string {
	if p, ok := r.Programs[program]; ok {
		return p.Log
	}
	return ""
}

func (r *Recorder) UseProgram(program uint32) {
	r.ActiveProgram = program
	r.record("UseProgram(%d)", program)
}

func (r *Recorder) DeleteProgram(program uint32) {
	if p, ok := r.Programs[program]; ok {
		p.Deleted = true
	}
	r.record("DeleteProgram(%d)", program)
}

func (r *Recorder) GenVertexArray() uint32 {
	id := r.id()
	r.record("GenVertexArray() = %d", id)
	return id
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.BoundVAO = vao
	r.record("BindVertexArray(%d)", vao)
}

func (r *Recorder) DeleteVertexArray(vao uint32) {
	r.record("DeleteVertexArray(%d)", vao)
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.id()
	r.Buffers[id] = nil
	r.record("GenBuffer() = %d", id)
	return id
}

func (r *Recorder) BindArrayBuffer(buffer uint32) {
	r.BoundBuffer = buffer
	r.record("BindArrayBuffer(%d)", buffer)
}

func (r *Recorder) BufferStaticData(data []float32) {
	r.Buffers[r.BoundBuffer] = slices.Clone(data)
	r.record("BufferStaticData(%d, %v)", r.BoundBuffer, data)
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	delete(r.Buffers, buffer)
	r.record("DeleteBuffer(%d)", buffer)
}

func (r *Recorder) VertexAttribFloats(index uint32, size int32, stride int32, offset uintptr) {
	a, ok := r.Attribs[index]
	if !ok {
		a = &Attrib{}
		r.Attribs[index] = a
	}
	a.Buffer = r.BoundBuffer
	a.Size = size
	a.Stride = stride
	a.Offset = offset
	r.record("VertexAttribFloats(%d, %d, %d, %d)", index, size, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	a, ok := r.Attribs[index]
	if !ok {
		a = &Attrib{}
		r.Attribs[index] = a
	}
	a.Enabled = true
	r.record("EnableVertexAttribArray(%d)", index)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.ViewportRect = [4]int32{x, y, width, height}
	r.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor(%g, %g, %g, %g)", red, green, blue, alpha)
}

func (r *Recorder) Clear() {
	r.record("Clear()")
}

func (r *Recorder) DrawArrays(mode gpu.Primitive, first, count int32) {
	r.record("DrawArrays(%s, %d, %d) program=%d", mode, first, count, r.ActiveProgram)
}
