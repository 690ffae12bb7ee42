// Package geometry generates the vertex data for the lane grid and the
// ship. All coordinates are in normalised device coordinates.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertices is an ordered list of 2D points. Line lists hold two endpoints
// per segment.
type Vertices []mgl32.Vec2

// Floats packs the points as x0, y0, x1, y1, ...
func (v Vertices) Floats() []float32 {
	out := make([]float32, 0, len(v)*2)
	for _, p := range v {
		out = append(out, p[0], p[1])
	}
	return out
}

func (v Vertices) Count() int32 {
	return int32(len(v))
}

type GridSpec struct {
	Lanes int `yaml:"lanes" json:"lanes"`
	Rows  int `yaml:"rows" json:"rows"`
}

func (g *GridSpec) Validate() error {
	if g.Lanes < 1 {
		return fmt.Errorf("lanes must be at least 1, got %d", g.Lanes)
	}
	if g.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", g.Rows)
	}
	return nil
}

type Geometry struct {
	Vertical   Vertices
	Horizontal Vertices
	Ship       Vertices
}

func (g GridSpec) Build() *Geometry {
	return &Geometry{
		Vertical:   VerticalLines(g.Lanes),
		Horizontal: HorizontalLines(g.Rows),
		Ship:       Ship(),
	}
}

// divide returns the i-th of n+1 evenly spaced positions across [-1, 1].
func divide(i, n int) float32 {
	return -1.0 + 2.0*float32(i)/float32(n)
}

// VerticalLines returns lanes+1 segments from (x, -1) to (x, 1).
func VerticalLines(lanes int) Vertices {
	v := make(Vertices, 0, (lanes+1)*2)
	for i := 0; i <= lanes; i++ {
		x := divide(i, lanes)
		v = append(v, mgl32.Vec2{x, -1}, mgl32.Vec2{x, 1})
	}
	return v
}

// HorizontalLines returns rows+1 segments from (-1, y) to (1, y).
func HorizontalLines(rows int) Vertices {
	v := make(Vertices, 0, (rows+1)*2)
	for i := 0; i <= rows; i++ {
		y := divide(i, rows)
		v = append(v, mgl32.Vec2{-1, y}, mgl32.Vec2{1, y})
	}
	return v
}

func Ship() Vertices {
	return Vertices{
		{-0.1, -0.9},
		{0.0, -0.5},
		{0.1, -0.9},
	}
}
