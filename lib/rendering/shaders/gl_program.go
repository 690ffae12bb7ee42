package shaders

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fosdem/galaxykd/lib/gpu"
	"github.com/fosdem/galaxykd/lib/metrics"
	"github.com/go-gl/mathgl/mgl32"
)

// Diagnostics receives the raw compiler output of failed shader stages.
var Diagnostics io.Writer = os.Stdout

type CompileError struct {
	Stage gpu.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program %s: %s", e.Program, e.Log)
}

// Program is a linked (or failed) program object. A failed program keeps
// its handle: drawing with it is a no-op on the GPU side.
type Program struct {
	ID     uint32
	Name   string
	Linked bool
}

// Compile compiles a single stage. On failure the stage object is deleted
// and the 0 handle is returned along with a *CompileError.
func Compile(dev gpu.Device, stage gpu.ShaderStage, source string) (uint32, error) {
	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if dev.ShaderCompiled(shader) {
		return shader, nil
	}

	clog := dev.ShaderInfoLog(shader)
	if clog == "" {
		clog = "(no compiler output)"
	}
	slog.Error("Failed to compile", slog.String("module", "shaders"), slog.String("stage", stage.String()))
	fmt.Fprintf(Diagnostics, "Failed to compile\n%s\n", clog)
	metrics.ShaderCompileFailures.WithLabelValues(stage.String()).Inc()

	dev.DeleteShader(shader)
	return 0, &CompileError{Stage: stage, Log: clog}
}

// Link attaches both stages to a new program and links it. The stage
// objects are deleted whatever the outcome. A failed link still returns
// the program handle, together with a *LinkError.
func Link(dev gpu.Device, name string, vertexShader, fragmentShader uint32) (Program, error) {
	defer func() {
		for _, s := range []uint32{vertexShader, fragmentShader} {
			if s != 0 {
				dev.DeleteShader(s)
			}
		}
	}()

	program := Program{ID: dev.CreateProgram(), Name: name}
	for _, s := range []uint32{vertexShader, fragmentShader} {
		if s != 0 {
			dev.AttachShader(program.ID, s)
		}
	}
	dev.LinkProgram(program.ID)
	dev.ValidateProgram(program.ID)

	if !dev.ProgramLinked(program.ID) {
		metrics.ProgramLinkFailures.WithLabelValues(name).Inc()
		return program, &LinkError{Program: name, Log: dev.ProgramInfoLog(program.ID)}
	}
	program.Linked = true
	return program, nil
}

// Build renders both templates for colour, compiles them and links the
// result. As with Link, a program handle is returned even on error; the
// error joins every compile and link failure.
func Build(dev gpu.Device, shaderer *Shaderer, name string, colour mgl32.Vec4) (Program, error) {
	data := NewShaderData(colour)

	vertexSource, err := shaderer.GetShaderSource(VertexTemplate, data)
	if err != nil {
		return Program{}, fmt.Errorf("could not get vertex shader: %w", err)
	}
	fragmentSource, err := shaderer.GetShaderSource(FragmentTemplate, data)
	if err != nil {
		return Program{}, fmt.Errorf("could not get fragment shader: %w", err)
	}

	// a failed stage still goes to the linker, which then reports the
	// program as unusable
	vs, vsErr := Compile(dev, gpu.VertexStage, vertexSource)
	fs, fsErr := Compile(dev, gpu.FragmentStage, fragmentSource)
	program, linkErr := Link(dev, name, vs, fs)

	return program, errors.Join(vsErr, fsErr, linkErr)
}
