package scene

import (
	"context"
	"testing"

	"github.com/Faultbox/deskscene/pkg/mesh"
)

func TestCache(t *testing.T) {
	c := NewCache()
	spec := SpecOf(mesh.Sphere{Segments: 8})

	if _, ok := c.Get(spec); ok {
		t.Fatal("empty cache returned a mesh")
	}

	m, err := mesh.BuildSphere(8)
	if err != nil {
		t.Fatal(err)
	}
	c.Set(spec, m)

	got, ok := c.Get(spec)
	if !ok || got != m {
		t.Fatal("cache did not return the stored mesh")
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses, want 1 and 1", hits, misses)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("len after clear = %d", c.Len())
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("stats after clear = %d, %d", hits, misses)
	}
}

func TestBakeWithCacheReuses(t *testing.T) {
	cache := NewCache()
	first, err := BakeWithCache(context.Background(), Desk(), 4, cache)
	if err != nil {
		t.Fatal(err)
	}
	if cache.Len() != 13 {
		t.Fatalf("cached meshes = %d, want 13", cache.Len())
	}
	_, missesBefore := cache.Stats()

	second, err := BakeWithCache(context.Background(), Desk(), 4, cache)
	if err != nil {
		t.Fatal(err)
	}
	hits, misses := cache.Stats()
	if misses != missesBefore {
		t.Errorf("second bake missed %d times", misses-missesBefore)
	}
	if hits != 13 {
		t.Errorf("hits = %d, want 13", hits)
	}
	for i := range first {
		if first[i].Mesh != second[i].Mesh {
			t.Errorf("%s was rebuilt", first[i].Name)
		}
	}
}
