package probe

import (
	"fmt"
	"io"
	"strings"
)

// DumpBVH prints the BVH tree with indentation (one tab per level): subtree
// counts (nodes, leaves, objects) and the box of each node. Reports false
// when the scene is scanned linearly.
func (s *Scene) DumpBVH(w io.Writer) bool {
	if s.root == nil {
		fmt.Fprintln(w, "[BVH] <none>")
		return false
	}
	memo := make(map[*bvhNode]bvhCounts, 1024)
	totals := bvhCount(s.root, memo)
	fmt.Fprintf(w, "[BVH] root: nodes=%d leaves=%d objs=%d\n", totals.nodes, totals.leaves, totals.objs)
	bvhPrint(w, s.root, 0, memo)
	return true
}

type bvhCounts struct {
	nodes  int
	leaves int
	objs   int
}

func bvhCount(n *bvhNode, memo map[*bvhNode]bvhCounts) bvhCounts {
	if n == nil {
		return bvhCounts{}
	}
	if c, ok := memo[n]; ok {
		return c
	}
	if n.leaf != nil {
		c := bvhCounts{nodes: 1, leaves: 1, objs: len(n.leaf)}
		memo[n] = c
		return c
	}
	lc := bvhCount(n.left, memo)
	rc := bvhCount(n.right, memo)
	c := bvhCounts{
		nodes:  1 + lc.nodes + rc.nodes,
		leaves: lc.leaves + rc.leaves,
		objs:   lc.objs + rc.objs,
	}
	memo[n] = c
	return c
}

func bvhPrint(w io.Writer, n *bvhNode, depth int, memo map[*bvhNode]bvhCounts) {
	if n == nil {
		return
	}
	ind := strings.Repeat("\t", depth)
	lo, hi := n.box.Min, n.box.Max
	if n.leaf != nil {
		fmt.Fprintf(w, "%sLEAF  objs=%d | min=(%.5g,%.5g,%.5g) max=(%.5g,%.5g,%.5g)\n",
			ind, len(n.leaf), lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
		return
	}
	c := memo[n]
	fmt.Fprintf(w, "%sNODE  nodes=%d leaves=%d objs=%d | min=(%.5g,%.5g,%.5g) max=(%.5g,%.5g,%.5g)\n",
		ind, c.nodes, c.leaves, c.objs, lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	bvhPrint(w, n.left, depth+1, memo)
	bvhPrint(w, n.right, depth+1, memo)
}
