package engine

// ============================================================================
// REGISTRY — one chart instance per surface
// ============================================================================
// Lifecycle contract: binding a chart to an already-bound surface destroys
// the prior instance first (destroy-and-recreate). Without this, repeated
// scans would stack live instances on the same surface.
//
// The registry is not goroutine-safe; the engine runs single-threaded.
// ============================================================================

// Registry tracks which chart instance owns each surface.
type Registry struct {
	bound map[string]*Chart
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bound: make(map[string]*Chart)}
}

// bind attaches a chart to its surface, destroying any prior instance
// bound to the same surface.
func (r *Registry) bind(c *Chart) {
	id := c.SurfaceID()
	if prev, ok := r.bound[id]; ok {
		prev.Destroy()
	}
	r.bound[id] = c
}

// Bound returns the live chart instance for a surface, if any.
func (r *Registry) Bound(surfaceID string) (*Chart, bool) {
	c, ok := r.bound[surfaceID]
	return c, ok
}

// Len returns the number of live instances.
func (r *Registry) Len() int { return len(r.bound) }

// Reset destroys every live instance and empties the registry.
func (r *Registry) Reset() {
	for _, c := range r.bound {
		c.Destroy()
	}
	r.bound = make(map[string]*Chart)
}
