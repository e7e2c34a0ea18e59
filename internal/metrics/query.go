package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gcbaptista/go-pro-directory/model"
)

var queriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "directory",
		Name:      "queries_total",
		Help:      "Total number of directory queries by sort order and outcome",
	},
	[]string{"order", "outcome"},
)

// ObserveQuery counts one pipeline run. outcome is "empty" when nothing matched.
func ObserveQuery(order model.SortOrder, total int) {
	if order == "" {
		order = model.SortNatural
	}
	outcome := "matched"
	if total == 0 {
		outcome = "empty"
	}
	queriesTotal.WithLabelValues(string(order), outcome).Inc()
}
