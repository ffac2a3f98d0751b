package notifier

import (
	"github.com/KirkDiggler/spyglass/internal/common/clock"
	"github.com/KirkDiggler/spyglass/internal/common/uuid"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/repositories/notification"
	"golang.org/x/time/rate"
)

// Config holds configuration for the notifier service
type Config struct {
	// ChannelID is the output channel
	ChannelID string

	// Sender delivers messages
	Sender MessageSender

	// Repository records delivered notifications
	Repository notification.Repository

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Metrics       metrics.Metrics

	// Limiter paces deliveries; nil means unlimited
	Limiter *rate.Limiter
}

// SendInput contains parameters for sending a notification
type SendInput struct {
	// Source is the watcher producing the message
	Source models.NotificationSource

	// Text is the full message content
	Text string

	// TTS asks the client to read the message aloud
	TTS bool

	// Dedup suppresses the message if it equals the last one sent
	Dedup bool
}

// SendOutput contains the result of sending a notification
type SendOutput struct {
	// Sent is true when the message was delivered
	Sent bool

	// Suppressed is true when the message repeated the last one sent
	Suppressed bool

	// NotificationID identifies the logged record when Sent
	NotificationID string
}
