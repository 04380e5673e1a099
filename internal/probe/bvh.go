package probe

import (
	"sort"

	"github.com/golang/geo/r3"

	"github.com/lukaszgryglicki/raygeom/internal/raygeom"
)

type bvhNode struct {
	box   raygeom.Box
	left  *bvhNode
	right *bvhNode
	leaf  []int // object indices, non-nil ⇒ leaf
}

func buildBVH(objs []Object) *bvhNode {
	idx := make([]int, len(objs))
	for i := range idx {
		idx[i] = i
	}
	return buildBVHRec(objs, idx)
}

func buildBVHRec(objs []Object, idx []int) *bvhNode {
	n := len(idx)
	if n == 0 {
		return nil
	}
	box, centers := raygeom.EmptyBox(), raygeom.EmptyBox()
	for _, i := range idx {
		box = box.Union(objs[i].box)
		centers = centers.Merge(objs[i].box.Center())
	}
	if n <= BVHMaxLeafSize {
		return &bvhNode{box: box, leaf: idx}
	}

	axis := longestAxis(centers)
	// If all centroids coincide (degenerate), fall back to longest box extent axis.
	if centers.Axis(axis).Length() <= 1e-18 {
		axis = longestAxis(box)
	}

	// Sort by chosen centroid axis, split at median
	sort.SliceStable(idx, func(a, b int) bool {
		return objs[idx[a]].box.Axis(axis).Center() < objs[idx[b]].box.Axis(axis).Center()
	})
	mid := n / 2
	return &bvhNode{
		box:   box,
		left:  buildBVHRec(objs, idx[:mid]),
		right: buildBVHRec(objs, idx[mid:]),
	}
}

func longestAxis(b raygeom.Box) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if b.Axis(i).Length() > b.Axis(axis).Length() {
			axis = i
		}
	}
	return axis
}

// Nearest-hit traversal (iterative, stack-based). Prunes by the shrinking ray.TMax.
func (s *Scene) traceBVH(ray raygeom.Ray, invDir r3.Vector) (raygeom.Result, int) {
	best, bestIdx := raygeom.Miss(), -1
	stack := []*bvhNode{s.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !raygeom.IntersectBoxInv(ray, invDir, n.box) {
			continue
		}
		if n.leaf != nil {
			for _, i := range n.leaf {
				if r, ok := s.traceObject(&ray, invDir, i, best); ok {
					best, bestIdx = r, i
				}
			}
			continue
		}
		// push far first so near is processed next
		near, far := n.left, n.right
		if along(ray, far) < along(ray, near) {
			near, far = far, near
		}
		if far != nil {
			stack = append(stack, far)
		}
		if near != nil {
			stack = append(stack, near)
		}
	}
	return best, bestIdx
}

// along orders children by how far down the ray their centers lie.
func along(ray raygeom.Ray, n *bvhNode) float64 {
	if n == nil {
		return 0
	}
	return n.box.Center().Sub(ray.Origin).Dot(ray.Dir)
}

// Nearest-object traversal, pruning by the shrinking distMax.
func (s *Scene) nearestBVH(pos r3.Vector, distMax float64) (raygeom.Result, int) {
	best, bestIdx := raygeom.Miss(), -1
	stack := []*bvhNode{s.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !raygeom.OverlapBoxPoint(pos, distMax, n.box) {
			continue
		}
		if n.leaf != nil {
			for _, i := range n.leaf {
				if r, ok := s.nearestObject(pos, &distMax, i, best); ok {
					best, bestIdx = r, i
				}
			}
			continue
		}
		near, far := n.left, n.right
		if boxDist2(pos, far) < boxDist2(pos, near) {
			near, far = far, near
		}
		if far != nil {
			stack = append(stack, far)
		}
		if near != nil {
			stack = append(stack, near)
		}
	}
	return best, bestIdx
}

func boxDist2(pos r3.Vector, n *bvhNode) float64 {
	if n == nil {
		return 0
	}
	return n.box.Center().Sub(pos).Norm2()
}
