// Package metrics counts conversion-plan activity with Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "unitlab"

// Conversions records plan cache lookups and the classes of planned
// conversions. A nil *Conversions records nothing.
type Conversions struct {
	name    string
	hits    prometheus.Counter
	misses  prometheus.Counter
	classes *prometheus.CounterVec
}

// NewConversions creates the counters and registers them with reg when reg
// is not nil.
func NewConversions(reg prometheus.Registerer) *Conversions {
	c := &Conversions{
		name: "conversions",
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plan_cache",
			Name:      "hits_total",
			Help:      "Conversion plans served from the cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plan_cache",
			Name:      "misses_total",
			Help:      "Conversion plans computed on demand.",
		}),
		classes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plan",
			Name:      "classified_total",
			Help:      "Computed conversion plans by safety class.",
		}, []string{"class"}),
	}
	if reg != nil {
		reg.MustRegister(c.hits, c.misses, c.classes)
	}
	return c
}

func (c *Conversions) Name() string { return c.name }

func (c *Conversions) Hit() {
	if c == nil {
		return
	}
	c.hits.Inc()
}

// Miss records a freshly computed plan of the given class.
func (c *Conversions) Miss(class string) {
	if c == nil {
		return
	}
	c.misses.Inc()
	c.classes.WithLabelValues(class).Inc()
}

// Value returns the cache hit ratio, or 0 before any lookup.
func (c *Conversions) Value() float64 {
	if c == nil {
		return 0
	}
	hits, misses := counterValue(c.hits), counterValue(c.misses)
	if hits+misses == 0 {
		return 0
	}
	return hits / (hits + misses)
}

// Snapshot returns every counter keyed by a short name.
func (c *Conversions) Snapshot() map[string]float64 {
	out := make(map[string]float64)
	if c == nil {
		return out
	}
	out["hits"] = counterValue(c.hits)
	out["misses"] = counterValue(c.misses)
	for _, class := range []string{"exact", "truncating", "floating", "rejected"} {
		if v := counterValue(c.classes.WithLabelValues(class)); v > 0 {
			out[class] = v
		}
	}
	return out
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
