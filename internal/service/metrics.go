package service

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce           sync.Once
	renderTotal           *prometheus.CounterVec
	renderDurationSeconds *prometheus.HistogramVec
	renderCacheTotal      *prometheus.CounterVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		renderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glowfolio",
			Subsystem: "render",
			Name:      "total",
			Help:      "Template renders by template and kind",
		}, []string{"template", "kind"})

		renderDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "glowfolio",
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Time spent rendering templates",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"template", "kind"})

		renderCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glowfolio",
			Subsystem: "render",
			Name:      "cache_lookups_total",
			Help:      "Rendered markup cache lookups by kind and result",
		}, []string{"kind", "result"})
	})
}

func observeRender(templateID, kind string, start time.Time) {
	renderTotal.WithLabelValues(templateID, kind).Inc()
	renderDurationSeconds.WithLabelValues(templateID, kind).Observe(time.Since(start).Seconds())
}

func observeCache(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	renderCacheTotal.WithLabelValues(kind, result).Inc()
}
