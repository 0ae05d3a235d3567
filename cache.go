package drawml

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// resolveKey uniquely identifies one resolution: the geometry identity, the
// target bounds, and the canonicalized adjust overrides.
type resolveKey struct {
	geom   *Geometry
	width  float64
	height float64
	adjust string
}

// ResolveCache memoizes Resolve results. Geometries are keyed by identity,
// so the cache suits the shared preset catalog or any definition that is
// not mutated after first use. Safe for concurrent use.
type ResolveCache struct {
	mu      sync.RWMutex
	entries map[resolveKey]*ResolvedGeometry
}

// NewResolveCache creates an empty cache.
func NewResolveCache() *ResolveCache {
	return &ResolveCache{entries: make(map[resolveKey]*ResolvedGeometry)}
}

// Resolve returns the cached result for the given arguments, resolving and
// storing it on first use. The returned value is shared across callers and
// must not be modified.
func (c *ResolveCache) Resolve(g *Geometry, width, height float64, opts *ResolveOptions) (*ResolvedGeometry, error) {
	key := resolveKey{geom: g, width: width, height: height, adjust: adjustKey(opts)}

	c.mu.RLock()
	if rg, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return rg, nil
	}
	c.mu.RUnlock()

	rg, err := g.Resolve(width, height, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = rg
	c.mu.Unlock()
	return rg, nil
}

// ResolvePreset is Resolve for a named catalog preset.
func (c *ResolveCache) ResolvePreset(name ShapeType, width, height float64, opts *ResolveOptions) (*ResolvedGeometry, error) {
	g, ok := PresetGeometry(name)
	if !ok {
		return nil, fmt.Errorf("unknown preset shape %q", string(name))
	}
	return c.Resolve(g, width, height, opts)
}

// Len reports the number of cached resolutions.
func (c *ResolveCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every cached resolution.
func (c *ResolveCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[resolveKey]*ResolvedGeometry)
	c.mu.Unlock()
}

// adjustKey canonicalizes adjust overrides into a comparable string:
// entries sorted by name, values in shortest round-trip form.
func adjustKey(opts *ResolveOptions) string {
	if opts == nil || len(opts.Adjustments) == 0 {
		return ""
	}
	names := make([]string, 0, len(opts.Adjustments))
	for name := range opts.Adjustments {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(opts.Adjustments[name], 'g', -1, 64))
	}
	return sb.String()
}
