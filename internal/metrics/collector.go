package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns the engine-facing Prometheus metrics. The engine itself is
// pure and records nothing; the API layer observes outcomes and feeds them
// here.
type Collector struct {
	registry *prometheus.Registry

	parseFallbacks prometheus.Counter
	matches        *prometheus.CounterVec
	conversions    *prometheus.CounterVec
	resolutions    *prometheus.CounterVec
	consolidations prometheus.Counter
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		parseFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "amount_parse_fallbacks_total",
			Help: "Quantity strings that fell back to a zero value",
		}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ingredient_matches_total",
			Help: "Ingredient match outcomes by kind",
		}, []string{"kind"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unit_conversions_total",
			Help: "Unit conversion outcomes",
		}, []string{"result"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_resolutions_total",
			Help: "Availability resolution outcomes",
		}, []string{"outcome"}),
		consolidations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grocery_consolidations_total",
			Help: "Grocery list consolidation runs",
		}),
	}

	c.registry.MustRegister(
		c.parseFallbacks,
		c.matches,
		c.conversions,
		c.resolutions,
		c.consolidations,
	)
	return c
}

// Registry returns the underlying registry for the metrics HTTP handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordParseFallback counts a quantity string that parsed to zero.
func (c *Collector) RecordParseFallback() {
	c.parseFallbacks.Inc()
}

// RecordMatch counts a match outcome ("exact", "substituted", "none").
func (c *Collector) RecordMatch(kind string) {
	c.matches.WithLabelValues(kind).Inc()
}

// RecordConversion counts a conversion outcome ("ok", "unknown_unit",
// "incompatible").
func (c *Collector) RecordConversion(result string) {
	c.conversions.WithLabelValues(result).Inc()
}

// RecordResolution counts a resolution outcome ("sufficient",
// "insufficient", "indeterminate", "no_match").
func (c *Collector) RecordResolution(outcome string) {
	c.resolutions.WithLabelValues(outcome).Inc()
}

// RecordConsolidation counts one consolidation run.
func (c *Collector) RecordConsolidation() {
	c.consolidations.Inc()
}
