package assemble

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"
	"sync"

	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/element"
)

// Cache memoizes assembly results behind a structural hash of the resolved
// parameters and policy. Assembly is pure and deterministic, so a hit can
// be returned as-is. Callers must treat cached results as immutable.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]*Result
}

// NewCache returns an empty result cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]*Result)}
}

// Assemble returns the cached result for the parameters, assembling and
// storing on a miss.
func (c *Cache) Assemble(p element.Parameters, pol code.Policy) (*Result, error) {
	key := ParamsHash(p, pol)

	c.mu.Lock()
	if r, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return r, nil
	}
	c.mu.Unlock()

	r, err := Assemble(p, pol)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = r
	c.mu.Unlock()
	return r, nil
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// ParamsHash is an FNV-1a hash over the canonical field encoding of a
// resolved parameter record and the policy name. Structurally equal
// records hash equal.
func ParamsHash(p element.Parameters, pol code.Policy) uint64 {
	h := fnv.New64a()

	h.Write([]byte(pol.Name))
	writeInt(h, int(p.Kind))
	writeInt(h, int(p.Profile))

	for _, f := range []float64{
		p.Span, p.CantileverLength, p.Backspan,
		p.Width, p.Depth, p.FlangeWidth, p.FlangeThickness,
		p.WallHeight, p.WallThickness, p.WallLength, p.BaseDepth, p.BaseWidth,
		p.Cover, p.CoverBuried,
		p.BottomDia, p.TopDia, p.HangerDia, p.VerticalDia, p.HorizontalDia,
		p.LinkDia, p.LinkSpacing, p.BendRadiusFactor,
	} {
		writeFloat(h, f)
	}

	for _, n := range []int{
		p.BottomCount, p.TopCount, p.HangerCount, p.VerticalCount, p.HorizontalCount,
	} {
		writeInt(h, n)
	}

	return h.Sum64()
}

func writeFloat(w io.Writer, f float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	w.Write(buf[:])
}

func writeInt(w io.Writer, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(n)))
	w.Write(buf[:])
}
