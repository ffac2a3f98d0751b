package steampoller

import (
	"time"

	"github.com/KirkDiggler/spyglass/internal/clients/steam"
	"github.com/KirkDiggler/spyglass/internal/localization"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/services/notifier"
	"github.com/KirkDiggler/spyglass/internal/state"
)

// Name identifies the poller in logs and metrics
const Name = "steam"

// PollerError is a custom error type for steam poller errors
type PollerError string

// Error implements the error interface
func (e PollerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       PollerError = "config cannot be nil"
	ErrNilClient       PollerError = "steam client cannot be nil"
	ErrNilState        PollerError = "player state cannot be nil"
	ErrNilNotifier     PollerError = "notifier cannot be nil"
	ErrNilLocalization PollerError = "localization cannot be nil"
	ErrNilMetrics      PollerError = "metrics cannot be nil"
	ErrInvalidInterval PollerError = "interval must be positive"
)

// Config holds configuration for the steam poller
type Config struct {
	Client       steam.Client
	State        *state.Store
	Notifier     notifier.Service
	Localization *localization.Bundle
	Metrics      metrics.Metrics

	// SteamID64 is the watched player's 64-bit Steam id
	SteamID64 uint64

	// Interval between polls
	Interval time.Duration
}

// PollOutput describes what one poll did
type PollOutput struct {
	// Change is what the poll committed to the shared state
	Change state.ChangeKind

	// Discarded is true when the result arrived after cancellation
	Discarded bool

	// Text is the notification composed for a change
	Text string
}
