package setup

import "github.com/prometheus/client_golang/prometheus"

// Prometheus setup metrics.
var cacheFallbacks = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "vieramatic_cache_fallbacks_total",
		Help: "Number of device resolutions served from cached specs.",
	},
)

func init() {
	prometheus.MustRegister(cacheFallbacks)
}
