// Package metrics - Prometheus metrics for voyage simulation operations
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationStepDuration tracks how long one simulate-day call takes.
	SimulationStepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voyage_simulation_step_duration_seconds",
		Help:    "Duration of a single simulate-day voyage step",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
	})

	// CacheHitRatio tracks hit ratio for weather/offer caches.
	CacheHitRatio = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "voyage_cache_hit_ratio",
		Help: "Cache hit ratio by cache name",
	}, []string{"cache"})

	// ActiveVoyagesTotal tracks voyages currently tracked in the registry.
	ActiveVoyagesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "voyage_active_total",
		Help: "Number of voyages currently tracked in the in-memory registry",
	})

	// VoyagesStartedTotal counts voyages started, by trade mode.
	VoyagesStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyage_started_total",
		Help: "Total voyages started, by trade mode",
	}, []string{"trade_mode"})

	// VoyagesFinishedTotal counts voyages that reached a terminal phase.
	VoyagesFinishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyage_finished_total",
		Help: "Total voyages finished, by terminal phase",
	}, []string{"phase"})

	// HazardDamageEventsTotal counts hull-damaging hazard resolutions.
	HazardDamageEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyage_hazard_damage_events_total",
		Help: "Total hazard resolutions that damaged the hull, by severity",
	}, []string{"severity"})

	// EncounterDamageEventsTotal counts hull-damaging encounter resolutions.
	EncounterDamageEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyage_encounter_damage_events_total",
		Help: "Total encounters that damaged the hull, by threat category",
	}, []string{"threat"})

	// CacheHitsTotal counts cache hits by cache name.
	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyage_cache_hits_total",
		Help: "Total cache hits by cache name",
	}, []string{"cache"})

	// CacheMissesTotal counts cache misses by cache name.
	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyage_cache_misses_total",
		Help: "Total cache misses by cache name",
	}, []string{"cache"})
)
