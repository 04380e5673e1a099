package probe

var (
	Debug     = false // progress lines, query statistics and the BVH dump
	AlwaysBVH = false // build the BVH even for tiny scenes
	NeverBVH  = false // always scan every object
)
