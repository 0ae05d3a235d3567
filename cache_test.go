package drawml

import (
	"strings"
	"sync"
	"testing"
)

func TestCacheReturnsSharedResult(t *testing.T) {
	c := NewResolveCache()

	a, err := c.ResolvePreset(ShapeRoundRect, 200, 100, nil)
	if err != nil {
		t.Fatalf("ResolvePreset failed: %v", err)
	}
	b, err := c.ResolvePreset(ShapeRoundRect, 200, 100, nil)
	if err != nil {
		t.Fatalf("ResolvePreset failed: %v", err)
	}
	if a != b {
		t.Error("expected the cached pointer on the second call")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestCacheKeysOnArguments(t *testing.T) {
	c := NewResolveCache()

	base, _ := c.ResolvePreset(ShapeRoundRect, 200, 100, nil)
	other, _ := c.ResolvePreset(ShapeRoundRect, 100, 100, nil)
	if base == other {
		t.Error("different bounds must not share an entry")
	}

	adj, _ := c.ResolvePreset(ShapeRoundRect, 200, 100, &ResolveOptions{
		Adjustments: map[string]float64{"adj": 30000},
	})
	if base == adj {
		t.Error("different adjustments must not share an entry")
	}
	adjAgain, _ := c.ResolvePreset(ShapeRoundRect, 200, 100, &ResolveOptions{
		Adjustments: map[string]float64{"adj": 30000},
	})
	if adj != adjAgain {
		t.Error("equal adjustments must hit the same entry")
	}

	if c.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.Len())
	}
}

func TestCacheEmptyAdjustmentsEqualNil(t *testing.T) {
	c := NewResolveCache()
	a, _ := c.ResolvePreset(ShapeRect, 50, 50, nil)
	b, _ := c.ResolvePreset(ShapeRect, 50, 50, &ResolveOptions{})
	d, _ := c.ResolvePreset(ShapeRect, 50, 50, &ResolveOptions{Adjustments: map[string]float64{}})
	if a != b || a != d {
		t.Error("nil and empty options must share one entry")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestCacheGeometryIdentity(t *testing.T) {
	c := NewResolveCache()
	g1 := &Geometry{PathLst: []PathSpec{{Commands: []PathCommand{
		{Type: CmdMoveTo, Pts: []PathPoint{{X: "l", Y: "t"}}},
		{Type: CmdClose},
	}}}}
	g2 := &Geometry{PathLst: g1.PathLst}

	a, err := c.Resolve(g1, 10, 10, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	b, err := c.Resolve(g2, 10, 10, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a == b {
		t.Error("distinct definitions must not share an entry")
	}
}

func TestCacheErrorsNotStored(t *testing.T) {
	c := NewResolveCache()
	_, err := c.ResolvePreset(ShapeParallelogram, 0, 0, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if c.Len() != 0 {
		t.Errorf("expected failed resolutions to stay out of the cache, got %d entries", c.Len())
	}

	_, err = c.ResolvePreset("noSuchShape", 100, 100, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown preset shape") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewResolveCache()
	c.ResolvePreset(ShapeRect, 10, 10, nil)
	c.ResolvePreset(ShapeRect, 20, 20, nil)
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected an empty cache, got %d entries", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewResolveCache()
	names := []ShapeType{ShapeRect, ShapeEllipse, ShapeRoundRect, ShapeStar5}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				name := names[(seed+j)%len(names)]
				if _, err := c.ResolvePreset(name, 100, 100, nil); err != nil {
					t.Errorf("%s: %v", name, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != len(names) {
		t.Errorf("expected %d entries, got %d", len(names), c.Len())
	}
}
