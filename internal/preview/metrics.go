package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	pagesRendered  *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

// newMetrics registers the preview metrics with the given registry.
//
// Metrics collected:
//   - htmlcomp_preview_pages_rendered_total: Counter of page renders by page and status
//   - htmlcomp_preview_render_duration_seconds: Histogram of render duration by page
func newMetrics(registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		pagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "htmlcomp",
			Subsystem: "preview",
			Name:      "pages_rendered_total",
			Help:      "Total number of page renders by page and status",
		}, []string{"page", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "htmlcomp",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Page render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"page"}),
	}
}
