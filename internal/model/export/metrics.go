package export

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var exportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "finance_assistant",
		Subsystem: "export",
		Name:      "total",
	},
	[]string{"format", "status"},
)

func observeExport(format string, err error) {
	status := "ok"
	if err != nil {
		status = "failed"
	}
	exportsTotal.WithLabelValues(format, status).Inc()
}
