package conversion

import (
	"sync"

	"github.com/san-kum/unitlab/internal/metrics"
	"github.com/san-kum/unitlab/internal/unit"
)

type planKey struct {
	from, to string
	rep      Rep
}

// Cache memoizes plans. It is safe for concurrent use.
type Cache struct {
	plans   sync.Map
	metrics *metrics.Conversions
}

// NewCache returns an empty cache reporting to m, which may be nil.
func NewCache(m *metrics.Conversions) *Cache {
	return &Cache{metrics: m}
}

// DefaultCache is used by the quantity package.
var DefaultCache = NewCache(nil)

// Plan returns the cached plan for (from, to, rep), classifying on first use.
func (c *Cache) Plan(from, to unit.Unit, rep Rep) Plan {
	key := planKey{from: from.Key(), to: to.Key(), rep: rep}
	if v, ok := c.plans.Load(key); ok {
		c.metrics.Hit()
		p := v.(Plan)
		p.From, p.To = from, to
		return p
	}
	p := Classify(from, to, rep)
	c.metrics.Miss(p.Class.String())
	c.plans.Store(key, p)
	return p
}

// Len counts cached plans.
func (c *Cache) Len() int {
	n := 0
	c.plans.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Reset drops every cached plan.
func (c *Cache) Reset() {
	c.plans.Range(func(k, _ any) bool {
		c.plans.Delete(k)
		return true
	})
}
