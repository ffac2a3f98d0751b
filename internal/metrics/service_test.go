package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncPollerRuns("steam")
	s.IncPollerRuns("steam")
	s.IncPollerErrors("match")
	s.IncNotificationsSent("presence")
	s.IncNotificationsSuppressed("presence")
	s.IncWatcherRestarts()

	assert.Equal(t, 2.0, testutil.ToFloat64(s.PollerRuns.WithLabelValues("steam")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.PollerErrors.WithLabelValues("match")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.NotificationsSent.WithLabelValues("presence")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.NotificationsSuppressed.WithLabelValues("presence")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.WatcherRestarts))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncWatcherRestarts()

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "spyglass_watcher_restarts_total 1")
}
