package probe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
)

func TestQueryLogCache(t *testing.T) {
	// reset
	cache = &QueryLogCache{queries: make(map[string][]QueryLog)}
	logQuery("foo", Hit, "a", r3.Vector{}, r3.Vector{}, 1)
	logQuery("foo", Miss, "b", r3.Vector{}, r3.Vector{}, 0)
	logQuery("bar", Culled, "c", r3.Vector{}, r3.Vector{}, 0)
	if len(cache.queries["foo"]) != 2 || len(cache.queries["bar"]) != 1 {
		t.Fatalf("unexpected cache sizes: %+v", cache.queries)
	}

	var buf bytes.Buffer
	queryStats(&buf)
	if got := buf.String(); got != "Query type bar: 1 logs\nQuery type foo: 2 logs\n" {
		t.Fatalf("stats:\n%s", got)
	}
}

func TestDebugQueriesAreLogged(t *testing.T) {
	defer func(d bool) { Debug = d }(Debug)
	Debug = true
	cache = &QueryLogCache{queries: make(map[string][]QueryLog)}

	s, err := NewScene(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg := &Config{
		Workers: 2,
		Rays: []RayCfg{
			{Name: "hit", Origin: v(0, 0, -5), Direction: v(0, 0, 1)},
			{Name: "miss", Origin: v(0, 0, 50), Direction: v(0, 0, 1)},
		},
		Points: []PointCfg{{Name: "p", Position: v(0, 0, 3)}},
	}
	s.Query(cfg)

	var buf bytes.Buffer
	queryStats(&buf)
	out := buf.String()
	for _, want := range []string{"ray_hit: 1", "ray_miss: 1", "ray_culled", "point_hit: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
