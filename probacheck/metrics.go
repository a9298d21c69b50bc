package probacheck

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// checkCallsTotal counts every check call, labeled by layout and outcome.
	//
	// Labels:
	//   - mtype: the layout name ("pred_quantiles" or "pred_interval").
	//   - valid: "true" if the candidate conformed to the layout, "false"
	//     otherwise. Rejections are a normal outcome, not an error condition,
	//     so the rate of valid="false" is a signal about upstream producers,
	//     not about this library.
	//
	// Useful queries:
	//   - rate(proba_check_calls_total[5m]) - checks per second
	//   - sum(rate(proba_check_calls_total{valid="false"}[5m])) by (mtype)
	//     - rejection rate per layout
	//
	// The nolint:gochecknoglobals directive is used because Prometheus metrics
	// are intentionally global: registered once, observed for the process
	// lifetime.
	checkCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "proba_check_calls_total",
		Help: "The total number of probabilistic-forecast layout checks",
	}, []string{"mtype", "valid"})

	// checkTime records check durations in milliseconds, labeled like
	// checkCallsTotal. Checks are O(rows x cols) at worst (the numeric-dtype
	// and NaN scans), so the buckets skew heavily toward the sub-millisecond
	// range with headroom for very large tables.
	checkTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "proba_check_time_millis",
		Help: "The time it takes to run a layout check, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000,
		},
	}, []string{"mtype", "valid"})
)

// init pre-initializes the counter with every label combination so that
// dashboards and rate() queries see a complete time series from process
// start, and a zero rejection rate is distinguishable from a missing metric.
func init() {
	for _, mtype := range []string{MtypeQuantiles, MtypeInterval} {
		for _, valid := range []string{"true", "false"} {
			checkCallsTotal.WithLabelValues(mtype, valid).Add(0)
		}
	}
}

// observeCheck records one completed check.
func observeCheck(mtype string, valid bool, start time.Time) {
	outcome := strconv.FormatBool(valid)

	checkCallsTotal.WithLabelValues(mtype, outcome).Inc()
	checkTime.WithLabelValues(mtype, outcome).
		Observe(float64(time.Since(start).Microseconds()) / 1e3)
}
