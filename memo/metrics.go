package memo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// lookupsTotal counts cache lookups by result. A persistently low hit rate
// means the cache is undersized for the working set, or callers are checking
// mostly-unique tables and should skip memoization entirely.
//
// Example PromQL:
//
//	sum(rate(proba_memo_lookups_total{result="hit"}[5m]))
//	  / sum(rate(proba_memo_lookups_total[5m]))
var lookupsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "proba_memo_lookups_total",
		Help: "Total number of memoized report cache lookups",
	},
	[]string{"result"},
)

// init pre-initializes both label values so rate() queries see complete time
// series from process start.
func init() {
	lookupsTotal.WithLabelValues("hit").Add(0)
	lookupsTotal.WithLabelValues("miss").Add(0)
}

func observeLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	lookupsTotal.WithLabelValues(result).Inc()
}
