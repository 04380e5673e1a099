package probe

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/golang/geo/r3"

	"github.com/lukaszgryglicki/raygeom/internal/raygeom"
	"github.com/lukaszgryglicki/raygeom/internal/tessellate"
)

type RayCfg struct {
	Name      string    `json:"name,omitempty"`
	Origin    r3.Vector `json:"origin"`
	Direction r3.Vector `json:"direction"`
	TMin      *float64  `json:"tmin,omitempty"` // defaults to raygeom.RayEps
	TMax      float64   `json:"tmax,omitempty"` // <= 0 means unbounded
}

type PointCfg struct {
	Name     string    `json:"name,omitempty"`
	Position r3.Vector `json:"position"`
	DistMax  float64   `json:"distMax,omitempty"` // <= 0 means unbounded
}

type PrimitiveCfg struct {
	Name    string      `json:"name,omitempty"`
	Type    string      `json:"type"`
	Points  []r3.Vector `json:"points"`
	Radii   []float64   `json:"radii,omitempty"`
	Normals []r3.Vector `json:"normals,omitempty"` // patch only, one per corner
}

type SolidCfg struct {
	Name      string    `json:"name,omitempty"`
	Type      string    `json:"type"`
	Size      r3.Vector `json:"size,omitempty"`
	Height    float64   `json:"height,omitempty"`
	Radius    float64   `json:"radius,omitempty"`
	RotDeg    r3.Vector `json:"rotDeg,omitempty"`
	Translate r3.Vector `json:"translate,omitempty"`
	Cells     int       `json:"cells,omitempty"`
}

type Config struct {
	Workers      int            `json:"workers,omitempty"`
	Output       string         `json:"output,omitempty"` // empty writes to stdout
	CoverageRays int            `json:"coverageRays,omitempty"`
	Rays         []RayCfg       `json:"rays,omitempty"`
	Points       []PointCfg     `json:"points,omitempty"`
	Primitives   []PrimitiveCfg `json:"primitives,omitempty"`
	Solids       []SolidCfg     `json:"solids,omitempty"`
}

// Ray builds the query ray; call after LoadConfig filled the defaults.
func (rc RayCfg) Ray() raygeom.Ray {
	r := raygeom.NewRay(rc.Origin, rc.Direction)
	if rc.TMin != nil {
		r.TMin = *rc.TMin
	}
	if rc.TMax > 0 {
		r.TMax = rc.TMax
	}
	return r
}

func (pc PointCfg) distMax() float64 {
	if pc.DistMax <= 0 {
		return math.Inf(1)
	}
	return pc.DistMax
}

// counts of points and radii each primitive type takes
var primitiveShapes = map[string]struct{ points, radii int }{
	"point":    {1, 1},
	"line":     {2, 2},
	"sphere":   {1, 1},
	"cone":     {2, 2},
	"triangle": {3, 3},
	"quad":     {4, 4},
	"patch":    {4, 0},
}

// Build validates the config and constructs the primitive. Points and lines
// without radii get DefaultRadius, triangles and quads zero.
func (pc PrimitiveCfg) Build() (primitive, error) {
	shape, ok := primitiveShapes[pc.Type]
	if !ok {
		return nil, fmt.Errorf("primitive %q: unknown type %q", pc.Name, pc.Type)
	}
	if len(pc.Points) != shape.points {
		return nil, fmt.Errorf("primitive %q: %s needs %d points, got %d", pc.Name, pc.Type, shape.points, len(pc.Points))
	}
	rad := make([]float64, shape.radii)
	switch {
	case len(pc.Radii) == shape.radii:
		copy(rad, pc.Radii)
	case len(pc.Radii) == 0:
		if pc.Type == "sphere" || pc.Type == "cone" {
			return nil, fmt.Errorf("primitive %q: %s needs radii", pc.Name, pc.Type)
		}
		if pc.Type == "point" || pc.Type == "line" {
			for i := range rad {
				rad[i] = DefaultRadius
			}
		}
	default:
		return nil, fmt.Errorf("primitive %q: %s takes %d radii, got %d", pc.Name, pc.Type, shape.radii, len(pc.Radii))
	}
	for _, r := range rad {
		if r < 0 {
			return nil, fmt.Errorf("primitive %q: radii must be >= 0, got %v", pc.Name, pc.Radii)
		}
	}
	if len(pc.Normals) != 0 && (pc.Type != "patch" || len(pc.Normals) != 4) {
		return nil, fmt.Errorf("primitive %q: normals are only taken by patches, one per corner", pc.Name)
	}

	p := pc.Points
	switch pc.Type {
	case "point":
		return pointPrim{P: p[0], R: rad[0]}, nil
	case "line":
		return linePrim{P0: p[0], P1: p[1], R0: rad[0], R1: rad[1]}, nil
	case "sphere":
		if rad[0] <= 0 {
			return nil, fmt.Errorf("primitive %q: sphere radius must be > 0", pc.Name)
		}
		return spherePrim{C: p[0], R: rad[0]}, nil
	case "cone":
		if rad[0] <= 0 && rad[1] <= 0 {
			return nil, fmt.Errorf("primitive %q: cone needs a positive radius", pc.Name)
		}
		return conePrim{P0: p[0], P1: p[1], R0: rad[0], R1: rad[1]}, nil
	case "triangle":
		return trianglePrim{P: [3]r3.Vector{p[0], p[1], p[2]}, Rad: [3]float64{rad[0], rad[1], rad[2]}}, nil
	case "quad":
		return quadPrim{P: [4]r3.Vector{p[0], p[1], p[2], p[3]}, Rad: [4]float64{rad[0], rad[1], rad[2], rad[3]}}, nil
	default:
		pp := patchPrim{P: [4]r3.Vector{p[0], p[1], p[2], p[3]}}
		if len(pc.Normals) == 4 {
			pp.Normals = &raygeom.PatchNormals{Normals: pc.Normals, Quad: [4]int{0, 1, 2, 3}}
		}
		return pp, nil
	}
}

// Spec converts the solid config for tessellation.
func (sc SolidCfg) Spec() tessellate.Spec {
	return tessellate.Spec{
		Kind:      tessellate.Kind(sc.Type),
		Size:      sc.Size,
		Height:    sc.Height,
		Radius:    sc.Radius,
		Rotate:    sc.RotDeg,
		Translate: sc.Translate,
		Cells:     sc.Cells,
	}
}

// LoadConfig reads a JSON config, fills defaults and validates queries.
// Primitives and solids are validated when the scene is built.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.fill(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: rays=%d, points=%d, primitives=%d, solids=%d, workers=%d",
		path, len(cfg.Rays), len(cfg.Points), len(cfg.Primitives), len(cfg.Solids), cfg.Workers)
	return &cfg, nil
}

func (cfg *Config) fill() error {
	// Defaults / validation
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.CoverageRays < 0 {
		cfg.CoverageRays = 0
	}
	if len(cfg.Primitives) == 0 && len(cfg.Solids) == 0 {
		return fmt.Errorf("config has no primitives or solids")
	}
	if len(cfg.Rays) == 0 && len(cfg.Points) == 0 && cfg.CoverageRays == 0 {
		return fmt.Errorf("config has no queries")
	}
	for i := range cfg.Rays {
		rc := &cfg.Rays[i]
		if rc.Name == "" {
			rc.Name = fmt.Sprintf("ray#%d", i)
		}
		if rc.Direction.Norm2() == 0 {
			return fmt.Errorf("ray %q: zero direction", rc.Name)
		}
		if rc.TMin == nil {
			tmin := raygeom.RayEps
			rc.TMin = &tmin
		}
		if rc.TMax > 0 && rc.TMax < *rc.TMin {
			return fmt.Errorf("ray %q: tmax %g < tmin %g", rc.Name, rc.TMax, *rc.TMin)
		}
	}
	for i := range cfg.Points {
		if cfg.Points[i].Name == "" {
			cfg.Points[i].Name = fmt.Sprintf("point#%d", i)
		}
	}
	for i := range cfg.Primitives {
		if cfg.Primitives[i].Name == "" {
			cfg.Primitives[i].Name = fmt.Sprintf("%s#%d", cfg.Primitives[i].Type, i)
		}
	}
	for i := range cfg.Solids {
		sc := &cfg.Solids[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("%s#%d", sc.Type, i)
		}
		if sc.Cells <= 0 {
			sc.Cells = tessellate.DefaultMeshCells
		}
	}
	return nil
}
