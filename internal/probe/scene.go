package probe

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/lukaszgryglicki/raygeom/internal/raygeom"
	"github.com/lukaszgryglicki/raygeom/internal/tessellate"
)

// Object is one queryable item: a configured primitive, or one triangle of
// a tessellated solid (Element is its index in the mesh).
type Object struct {
	Name    string
	Element int
	box     raygeom.Box
	prim    primitive
}

type Scene struct {
	Objects []Object
	Bounds  raygeom.Box
	root    *bvhNode // nil when scanning linearly
}

func NewScene(cfg *Config) (*Scene, error) {
	s := &Scene{Bounds: raygeom.EmptyBox()}
	for _, pc := range cfg.Primitives {
		p, err := pc.Build()
		if err != nil {
			return nil, err
		}
		s.add(pc.Name, 0, p)
	}
	for _, sc := range cfg.Solids {
		spec := sc.Spec()
		tris, err := tessellate.Solid(spec)
		if err != nil {
			return nil, fmt.Errorf("solid %q: %w", sc.Name, err)
		}
		lo, hi, err := tessellate.Bounds(spec)
		if err != nil {
			return nil, fmt.Errorf("solid %q: %w", sc.Name, err)
		}
		if len(tris) == 0 {
			return nil, fmt.Errorf("solid %q: no triangles inside %v..%v, raise cells", sc.Name, lo, hi)
		}
		for i, t := range tris {
			s.add(sc.Name, i, trianglePrim{P: t})
		}
		DebugLog("Solid %s: %d triangles in %v..%v", sc.Name, len(tris), lo, hi)
	}
	if len(s.Objects) == 0 {
		return nil, fmt.Errorf("scene is empty")
	}
	if AlwaysBVH || (!NeverBVH && len(s.Objects) >= BVHFromNObjects) {
		s.root = buildBVH(s.Objects)
	}
	return s, nil
}

func (s *Scene) add(name string, element int, p primitive) {
	b := p.Bounds()
	s.Objects = append(s.Objects, Object{Name: name, Element: element, box: b, prim: p})
	s.Bounds = s.Bounds.Union(b)
}

// Trace returns the nearest hit along ray and the index of the object it
// belongs to, -1 on a miss.
func (s *Scene) Trace(ray raygeom.Ray) (raygeom.Result, int) {
	invDir := ray.InvDir()
	if s.root != nil {
		return s.traceBVH(ray, invDir)
	}
	best, bestIdx := raygeom.Miss(), -1
	for i := range s.Objects {
		if r, ok := s.traceObject(&ray, invDir, i, best); ok {
			best, bestIdx = r, i
		}
	}
	return best, bestIdx
}

// traceObject tests object i and shrinks ray.TMax on a closer hit.
func (s *Scene) traceObject(ray *raygeom.Ray, invDir r3.Vector, i int, best raygeom.Result) (raygeom.Result, bool) {
	o := &s.Objects[i]
	if !raygeom.IntersectBoxInv(*ray, invDir, o.box) {
		if Debug {
			logQuery("ray_culled", Culled, o.Name, ray.Origin, r3.Vector{}, 0)
		}
		return best, false
	}
	next := raygeom.Closest(o.prim.Intersect(*ray), best)
	if next == best {
		return best, false
	}
	ray.TMax = next.Dist()
	return next, true
}

// Nearest returns the object closest to pos within distMax and the index
// of that object, -1 when nothing is in reach.
func (s *Scene) Nearest(pos r3.Vector, distMax float64) (raygeom.Result, int) {
	if s.root != nil {
		return s.nearestBVH(pos, distMax)
	}
	best, bestIdx := raygeom.Miss(), -1
	for i := range s.Objects {
		if r, ok := s.nearestObject(pos, &distMax, i, best); ok {
			best, bestIdx = r, i
		}
	}
	return best, bestIdx
}

// nearestObject tests object i and shrinks distMax on a closer overlap.
func (s *Scene) nearestObject(pos r3.Vector, distMax *float64, i int, best raygeom.Result) (raygeom.Result, bool) {
	o := &s.Objects[i]
	query := raygeom.PointBounds(pos, *distMax)
	if !raygeom.OverlapBoxes(query, o.box) || !raygeom.OverlapBoxPoint(pos, *distMax, o.box) {
		if Debug {
			logQuery("point_culled", Culled, o.Name, pos, r3.Vector{}, 0)
		}
		return best, false
	}
	next := raygeom.Closest(o.prim.Overlap(pos, *distMax), best)
	if next == best {
		return best, false
	}
	*distMax = next.Dist()
	return next, true
}
