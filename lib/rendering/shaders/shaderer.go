package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexTemplate   = "position.vert"
	FragmentTemplate = "solid.frag"
)

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	R, G, B, A float32
}

func NewShaderData(colour mgl32.Vec4) *ShaderData {
	return &ShaderData{R: colour[0], G: colour[1], B: colour[2], A: colour[3]}
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
