package metrics

// Metrics defines the counters the watchers report.
// This decouples the services from the Prometheus implementation.
type Metrics interface {
	IncPollerRuns(poller string)
	IncPollerErrors(poller string)
	IncNotificationsSent(source string)
	IncNotificationsFailed(source string)
	IncNotificationsSuppressed(source string)
	IncWatcherRestarts()
}
