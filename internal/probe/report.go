package probe

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/golang/geo/r3"

	"github.com/lukaszgryglicki/raygeom/internal/raygeom"
)

type HitReport struct {
	Object   string      `json:"object"`
	Element  int         `json:"element,omitempty"` // triangle index within a solid
	Distance float64     `json:"distance"`
	UV       [2]float64  `json:"uv"`
	Position [3]float64  `json:"position"`
	Normal   *[3]float64 `json:"normal,omitempty"` // rays only
}

type QueryReport struct {
	Name string     `json:"name"`
	Hit  *HitReport `json:"hit,omitempty"`
}

type Report struct {
	Rays     []QueryReport `json:"rays,omitempty"`
	Points   []QueryReport `json:"points,omitempty"`
	Coverage *float64      `json:"coverage,omitempty"`
}

func arr(v r3.Vector) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// queryReport converts a scene answer; withNormal is set for ray queries.
func (s *Scene) queryReport(name string, r raygeom.Result, idx int, withNormal bool) QueryReport {
	h, ok := r.Get()
	if !ok || idx < 0 {
		return QueryReport{Name: name}
	}
	o := s.Objects[idx]
	hr := &HitReport{
		Object:   o.Name,
		Element:  o.Element,
		Distance: h.Distance,
		UV:       [2]float64{h.UV.X, h.UV.Y},
		Position: arr(h.Position),
	}
	if withNormal {
		n := arr(h.Normal)
		hr.Normal = &n
	}
	return QueryReport{Name: name, Hit: hr}
}

func writeReport(rep *Report, path string) error {
	if path == "" {
		return encodeReport(os.Stdout, rep)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encodeReport(f, rep); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encodeReport(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
