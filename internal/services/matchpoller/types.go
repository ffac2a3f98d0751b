package matchpoller

import (
	"time"

	"github.com/KirkDiggler/spyglass/internal/clients/opendota"
	"github.com/KirkDiggler/spyglass/internal/localization"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/services/notifier"
)

// Name identifies the poller in logs and metrics
const Name = "match"

// PollerError is a custom error type for match poller errors
type PollerError string

// Error implements the error interface
func (e PollerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       PollerError = "config cannot be nil"
	ErrNilClient       PollerError = "match client cannot be nil"
	ErrNilNotifier     PollerError = "notifier cannot be nil"
	ErrNilLocalization PollerError = "localization cannot be nil"
	ErrNilMetrics      PollerError = "metrics cannot be nil"
	ErrInvalidInterval PollerError = "interval must be positive"
	ErrEmptyCatalog    PollerError = "hero catalog is empty"
)

// Config holds configuration for the match poller
type Config struct {
	Client       opendota.Client
	Notifier     notifier.Service
	Localization *localization.Bundle
	Metrics      metrics.Metrics

	// AccountID is the watched player's 32-bit Steam account id
	AccountID uint64

	// Interval between polls
	Interval time.Duration
}

// PollOutput describes what one poll did
type PollOutput struct {
	// MatchID is the newest match seen, zero when the list was empty
	MatchID int64

	// Seeded is true when the poll only initialized the cursor
	Seeded bool

	// Announced is true when a new match was dispatched
	Announced bool

	// Discarded is true when the result arrived after cancellation
	Discarded bool

	Text string
}

// cursor remembers the newest match already handled
type cursor struct {
	id     int64
	seeded bool
}
