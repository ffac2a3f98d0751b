package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                      sync.Mutex
	pollerRuns              map[string]int
	pollerErrors            map[string]int
	notificationsSent       map[string]int
	notificationsFailed     map[string]int
	notificationsSuppressed map[string]int
	watcherRestarts         int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		pollerRuns:              make(map[string]int),
		pollerErrors:            make(map[string]int),
		notificationsSent:       make(map[string]int),
		notificationsFailed:     make(map[string]int),
		notificationsSuppressed: make(map[string]int),
	}
}

func (m *Mock) IncPollerRuns(poller string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollerRuns[poller]++
}

func (m *Mock) IncPollerErrors(poller string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollerErrors[poller]++
}

func (m *Mock) IncNotificationsSent(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationsSent[source]++
}

func (m *Mock) IncNotificationsFailed(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationsFailed[source]++
}

func (m *Mock) IncNotificationsSuppressed(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationsSuppressed[source]++
}

func (m *Mock) IncWatcherRestarts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watcherRestarts++
}

// PollerRuns returns the number of ticks recorded for a poller.
func (m *Mock) PollerRuns(poller string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollerRuns[poller]
}

// PollerErrors returns the number of errors recorded for a poller.
func (m *Mock) PollerErrors(poller string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollerErrors[poller]
}

// NotificationsSent returns the number of deliveries for a source.
func (m *Mock) NotificationsSent(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notificationsSent[source]
}

// NotificationsFailed returns the number of failed deliveries for a source.
func (m *Mock) NotificationsFailed(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notificationsFailed[source]
}

// NotificationsSuppressed returns the number of duplicates dropped for a source.
func (m *Mock) NotificationsSuppressed(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notificationsSuppressed[source]
}

// WatcherRestarts returns the number of supervisor restarts.
func (m *Mock) WatcherRestarts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.watcherRestarts
}
