package presence

import (
	"github.com/KirkDiggler/spyglass/internal/localization"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/services/notifier"
	"github.com/KirkDiggler/spyglass/internal/state"
)

// PresenceError is a custom error type for presence errors
type PresenceError string

// Error implements the error interface
func (e PresenceError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       PresenceError = "config cannot be nil"
	ErrEmptyGuild      PresenceError = "target guild cannot be empty"
	ErrEmptyUser       PresenceError = "target user cannot be empty"
	ErrNilState        PresenceError = "player state cannot be nil"
	ErrNilNotifier     PresenceError = "notifier cannot be nil"
	ErrNilLocalization PresenceError = "localization cannot be nil"
	ErrNilMetrics      PresenceError = "metrics cannot be nil"
	ErrNilPresence     PresenceError = "presence cannot be nil"
)

// SuppressReason explains why an update produced no message
type SuppressReason string

const (
	ReasonNone          SuppressReason = ""
	ReasonOtherSubject  SuppressReason = "other_subject"
	ReasonSameGame      SuppressReason = "same_game"
	ReasonDuplicateText SuppressReason = "duplicate_text"
)

// Config holds configuration for the presence service
type Config struct {
	TargetGuild  string
	TargetUser   string
	State        *state.Store
	Notifier     notifier.Service
	Localization *localization.Bundle
	Metrics      metrics.Metrics
}

// HandlePresenceInput contains parameters for handling a presence update
type HandlePresenceInput struct {
	Presence *models.Presence
}

// HandlePresenceOutput contains the result of handling a presence update
type HandlePresenceOutput struct {
	// Sent is true when a message was delivered
	Sent bool

	// Reason is set when nothing was sent
	Reason SuppressReason

	// Text is the composed message, empty when the update was dropped before composing
	Text string

	// Change is what the update committed to the shared state
	Change state.ChangeKind
}
