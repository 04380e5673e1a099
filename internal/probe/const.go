package probe

const (
	DefaultRadius   = 0.01 // points and lines given without radii
	BVHMaxLeafSize  = 2
	BVHFromNObjects = 8 // below this a linear scan beats building the tree
	CoverageMargin  = 1.05
)
