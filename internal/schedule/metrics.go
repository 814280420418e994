package schedule

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulesBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "namaz_schedules_total",
		Help: "The total number of daily schedules assembled",
	})
	upstreamFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "namaz_upstream_fallbacks_total",
		Help: "The total number of schedules built from the fallback timings",
	})
)
