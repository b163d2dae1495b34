package scene

import (
	"sync"

	"github.com/Faultbox/deskscene/pkg/mesh"
)

// Cache holds built meshes by shape so repeated bakes reuse them.
// Cached meshes are shared; callers must not modify them.
type Cache struct {
	meshes map[ShapeSpec]*mesh.Mesh
	mu     sync.RWMutex

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		meshes: make(map[ShapeSpec]*mesh.Mesh),
	}
}

// Get returns the mesh built for spec, if any.
func (c *Cache) Get(spec ShapeSpec) (*mesh.Mesh, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.meshes[spec]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return m, ok
}

// Set stores the mesh built for spec.
func (c *Cache) Set(spec ShapeSpec, m *mesh.Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meshes[spec] = m
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.meshes)
}

// Clear drops every mesh and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meshes = make(map[ShapeSpec]*mesh.Mesh)
	c.hits = 0
	c.misses = 0
}

// Stats returns lookup counts since creation or the last Clear.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
