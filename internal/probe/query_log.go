package probe

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/golang/geo/r3"
)

type Category uint8

const (
	Hit    Category = iota // query found a primitive
	Miss                   // query found nothing
	Culled                 // bounding box rejected an object
)

type QueryLog struct {
	Name     string
	Category Category
	Object   string    // object name, or query name for Hit/Miss
	Origin   r3.Vector // ray origin or query position
	Point    r3.Vector // hit point, if any
	Distance float64
}

type QueryLogCache struct {
	mu      sync.Mutex
	queries map[string][]QueryLog // map of log name to logs
}

var cache = &QueryLogCache{
	queries: make(map[string][]QueryLog),
}

func logQuery(name string, category Category, object string, origin, point r3.Vector, distance float64) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.queries[name] = append(cache.queries[name], QueryLog{
		Name:     name,
		Category: category,
		Object:   object,
		Origin:   origin,
		Point:    point,
		Distance: distance,
	})
}

func queryStats(w io.Writer) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	names := make([]string, 0, len(cache.queries))
	for k := range cache.queries {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(w, "Query type %s: %d logs\n", k, len(cache.queries[k]))
	}
}
