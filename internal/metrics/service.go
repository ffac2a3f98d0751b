package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service is the Prometheus-backed Metrics implementation
type Service struct {
	PollerRuns              *prometheus.CounterVec
	PollerErrors            *prometheus.CounterVec
	NotificationsSent       *prometheus.CounterVec
	NotificationsFailed     *prometheus.CounterVec
	NotificationsSuppressed *prometheus.CounterVec
	WatcherRestarts         prometheus.Counter
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PollerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spyglass_poller_runs_total",
			Help: "The total number of poller ticks.",
		}, []string{"poller"}),
		PollerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spyglass_poller_errors_total",
			Help: "The total number of poller ticks skipped because of an error.",
		}, []string{"poller"}),
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spyglass_notifications_sent_total",
			Help: "The total number of notifications delivered.",
		}, []string{"source"}),
		NotificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spyglass_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}, []string{"source"}),
		NotificationsSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spyglass_notifications_suppressed_total",
			Help: "The total number of notifications dropped as duplicates.",
		}, []string{"source"}),
		WatcherRestarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spyglass_watcher_restarts_total",
			Help: "The total number of times the pollers were (re)started.",
		}),
	}

	reg.MustRegister(
		s.PollerRuns,
		s.PollerErrors,
		s.NotificationsSent,
		s.NotificationsFailed,
		s.NotificationsSuppressed,
		s.WatcherRestarts,
	)

	return s
}

func (s *Service) IncPollerRuns(poller string) {
	s.PollerRuns.WithLabelValues(poller).Inc()
}

func (s *Service) IncPollerErrors(poller string) {
	s.PollerErrors.WithLabelValues(poller).Inc()
}

func (s *Service) IncNotificationsSent(source string) {
	s.NotificationsSent.WithLabelValues(source).Inc()
}

func (s *Service) IncNotificationsFailed(source string) {
	s.NotificationsFailed.WithLabelValues(source).Inc()
}

func (s *Service) IncNotificationsSuppressed(source string) {
	s.NotificationsSuppressed.WithLabelValues(source).Inc()
}

func (s *Service) IncWatcherRestarts() {
	s.WatcherRestarts.Inc()
}
