package raygeom

const (
	RayEps     = 1e-4               // default ray tmin, keeps secondary rays off their origin surface
	BoxSlabEps = 1.0000000000000004 // 2 ulp bump on the slab upper bound (float32 code uses 1.00000024)
)
