// Package tessellate turns solid descriptions into triangle soups through
// signed distance fields and marching cubes.
package tessellate

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r3"
)

// DefaultMeshCells is the marching cubes resolution along the longest axis.
const DefaultMeshCells = 64

// Kind names a solid shape.
type Kind string

const (
	Box      Kind = "box"
	Cylinder Kind = "cylinder"
)

// Spec describes one solid. Boxes use Size, cylinders Height and Radius
// (axis along Z). Both are centered at the origin, then rotated by Rotate
// (Euler degrees, applied X then Y then Z) and moved by Translate.
type Spec struct {
	Kind      Kind
	Size      r3.Vector
	Height    float64
	Radius    float64
	Rotate    r3.Vector
	Translate r3.Vector
	Cells     int
}

// Triangle is one face of a tessellated solid, counter-clockwise seen from
// outside.
type Triangle [3]r3.Vector

// Solid tessellates spec.
func Solid(spec Spec) ([]Triangle, error) {
	s, err := build(spec)
	if err != nil {
		return nil, err
	}
	cells := spec.Cells
	if cells <= 0 {
		cells = DefaultMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	out := make([]Triangle, 0, len(triangles))
	for _, tri := range triangles {
		var t Triangle
		for j := 0; j < 3; j++ {
			v := tri[j]
			t[j] = r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
		}
		out = append(out, t)
	}
	return out, nil
}

func build(spec Spec) (sdf.SDF3, error) {
	var (
		s   sdf.SDF3
		err error
	)
	switch spec.Kind {
	case Box:
		if spec.Size.X <= 0 || spec.Size.Y <= 0 || spec.Size.Z <= 0 {
			return nil, fmt.Errorf("box size must be positive, got %+v", spec.Size)
		}
		s, err = sdf.Box3D(toVec(spec.Size), 0)
		if err != nil {
			return nil, fmt.Errorf("box: %w", err)
		}
	case Cylinder:
		if spec.Height <= 0 || spec.Radius <= 0 {
			return nil, fmt.Errorf("cylinder height and radius must be positive, got %g, %g", spec.Height, spec.Radius)
		}
		s, err = sdf.Cylinder3D(spec.Height, spec.Radius, 0)
		if err != nil {
			return nil, fmt.Errorf("cylinder: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown solid kind %q", spec.Kind)
	}

	if spec.Rotate != (r3.Vector{}) {
		deg := math.Pi / 180
		m := sdf.RotateZ(spec.Rotate.Z * deg).
			Mul(sdf.RotateY(spec.Rotate.Y * deg)).
			Mul(sdf.RotateX(spec.Rotate.X * deg))
		s = sdf.Transform3D(s, m)
	}
	if spec.Translate != (r3.Vector{}) {
		s = sdf.Transform3D(s, sdf.Translate3d(toVec(spec.Translate)))
	}
	return s, nil
}

func toVec(v r3.Vector) v3.Vec { return v3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// Bounds returns the bounding box of the solid's field, slightly larger
// than the mesh marching cubes produces from it.
func Bounds(spec Spec) (min, max r3.Vector, err error) {
	s, err := build(spec)
	if err != nil {
		return min, max, err
	}
	bb := s.BoundingBox()
	min = r3.Vector{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z}
	max = r3.Vector{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z}
	return min, max, nil
}
