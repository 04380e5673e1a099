package probe

import (
	"os"
	"time"

	"github.com/golang/geo/r3"

	"github.com/lukaszgryglicki/raygeom/internal/raygeom"
)

func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	scene, err := NewScene(cfg)
	if err != nil {
		return err
	}
	DebugLog("Scene: %d objects, bounds=%+v, bvh=%v", len(scene.Objects), scene.Bounds, scene.root != nil)
	if Debug {
		scene.DumpBVH(os.Stderr)
	}

	start := time.Now()
	rep := scene.Query(cfg)
	DebugLog("Queries: rays=%d, points=%d, coverage=%d, time: %s",
		len(cfg.Rays), len(cfg.Points), cfg.CoverageRays, time.Since(start))

	if Debug {
		queryStats(os.Stderr)
	}
	return writeReport(rep, cfg.Output)
}

// Query answers every ray and point query of cfg.
func (s *Scene) Query(cfg *Config) *Report {
	rep := &Report{
		Rays:   make([]QueryReport, len(cfg.Rays)),
		Points: make([]QueryReport, len(cfg.Points)),
	}

	forEach(len(cfg.Rays), cfg.Workers, func(_, i int) {
		rc := cfg.Rays[i]
		ray := rc.Ray()
		r, idx := s.Trace(ray)
		if Debug {
			s.logAnswer("ray", rc.Name, ray.Origin, r)
		}
		rep.Rays[i] = s.queryReport(rc.Name, r, idx, true)
	})

	forEach(len(cfg.Points), cfg.Workers, func(_, i int) {
		pc := cfg.Points[i]
		r, idx := s.Nearest(pc.Position, pc.distMax())
		if Debug {
			s.logAnswer("point", pc.Name, pc.Position, r)
		}
		rep.Points[i] = s.queryReport(pc.Name, r, idx, false)
	})

	if cfg.CoverageRays > 0 {
		c := s.estimateCoverage(cfg.CoverageRays, cfg.Workers)
		rep.Coverage = &c
	}
	return rep
}

func (s *Scene) logAnswer(kind, name string, origin r3.Vector, r raygeom.Result) {
	if h, ok := r.Get(); ok {
		logQuery(kind+"_hit", Hit, name, origin, h.Position, h.Distance)
		return
	}
	logQuery(kind+"_miss", Miss, name, origin, r3.Vector{}, 0)
}
