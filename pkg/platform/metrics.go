package platform

import "github.com/prometheus/client_golang/prometheus"

// Prometheus discovery metrics.
var deviceSetups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vieramatic_device_setups_total",
		Help: "Per-device setup outcomes across discovery cycles.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(deviceSetups)
}
