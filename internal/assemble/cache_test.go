package assemble

import (
	"sync"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/code"
)

func TestParamsHash(t *testing.T) {
	p := testBeam(t)
	pol := code.Default()

	if ParamsHash(p, pol) != ParamsHash(p, pol) {
		t.Error("structurally equal parameters hashed differently")
	}

	q := p
	q.Depth = 0.55
	if ParamsHash(p, pol) == ParamsHash(q, pol) {
		t.Error("different depths hashed equal")
	}

	ec2, _ := code.ByName("EC2")
	if ParamsHash(p, pol) == ParamsHash(p, ec2) {
		t.Error("different policies hashed equal")
	}

	r := p
	r.TopCount++
	if ParamsHash(p, pol) == ParamsHash(r, pol) {
		t.Error("different counts hashed equal")
	}
}

func TestCacheHit(t *testing.T) {
	c := NewCache()
	p := testBeam(t)
	pol := code.Default()

	a, err := c.Assemble(p, pol)
	if err != nil {
		t.Fatalf("first assemble: %v", err)
	}
	b, err := c.Assemble(p, pol)
	if err != nil {
		t.Fatalf("second assemble: %v", err)
	}
	if a != b {
		t.Error("cache miss on structurally equal parameters")
	}
	if c.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", c.Len())
	}

	q := p
	q.Span = 7.0
	if _, err := c.Assemble(q, pol); err != nil {
		t.Fatalf("third assemble: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("cache holds %d entries, want 2", c.Len())
	}
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	c := NewCache()
	p := testBeam(t)
	p.Width = 0.1
	p.BottomCount = 6

	if _, err := c.Assemble(p, code.Default()); err == nil {
		t.Fatal("expected assembly to fail")
	}
	if c.Len() != 0 {
		t.Errorf("failed assembly was cached: %d entries", c.Len())
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()
	p := testBeam(t)
	pol := code.Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Assemble(p, pol); err != nil {
				t.Errorf("concurrent assemble: %v", err)
			}
		}()
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", c.Len())
	}
}
