package notifier

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/spyglass/internal/common/clock"
	"github.com/KirkDiggler/spyglass/internal/common/uuid"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/repositories/notification"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// service implements the Service interface
type service struct {
	channelID     string
	sender        MessageSender
	repository    notification.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	metrics       metrics.Metrics
	limiter       *rate.Limiter

	// mu guards last only; it is never held across a send
	mu   sync.Mutex
	last string
}

// New creates a new notifier service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ChannelID == "" {
		return nil, ErrEmptyChannel
	}
	if cfg.Sender == nil {
		return nil, ErrNilSender
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}
	if cfg.Metrics == nil {
		return nil, ErrNilMetrics
	}

	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &service{
		channelID:     cfg.ChannelID,
		sender:        cfg.Sender,
		repository:    cfg.Repository,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		metrics:       cfg.Metrics,
		limiter:       limiter,
	}, nil
}

// LastNotification returns the text of the most recently sent message
func (s *service) LastNotification() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

// Send delivers a message. The text is claimed as the last notification in the
// same critical section that decides to send, so two racing identical messages
// produce a single delivery. A failed delivery hands the claim back.
func (s *service) Send(ctx context.Context, input *SendInput) (*SendOutput, error) {
	if input == nil || input.Text == "" {
		return nil, ErrEmptyText
	}
	source := string(input.Source)

	s.mu.Lock()
	previous := s.last
	if input.Dedup && input.Text == previous {
		s.mu.Unlock()
		s.metrics.IncNotificationsSuppressed(source)
		log.Debug("Suppressed duplicate notification", "source", source)
		return &SendOutput{Suppressed: true}, nil
	}
	s.last = input.Text
	s.mu.Unlock()

	if err := s.limiter.Wait(ctx); err != nil {
		s.release(input.Text, previous)
		return nil, fmt.Errorf("notification not sent: %w", err)
	}

	if err := s.sender.SendMessage(ctx, s.channelID, input.Text, input.TTS); err != nil {
		s.release(input.Text, previous)
		s.metrics.IncNotificationsFailed(source)
		log.Error("Error sending notification", "source", source, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	s.metrics.IncNotificationsSent(source)

	record := &models.Notification{
		ID:     s.uuidGenerator.NewUUID(),
		Source: input.Source,
		Text:   input.Text,
		SentAt: s.clock.Now(),
	}
	if err := s.repository.SaveNotification(ctx, &notification.SaveNotificationInput{
		Notification: record,
	}); err != nil {
		log.Warn("Failed to record notification", "id", record.ID, "err", err)
	}

	return &SendOutput{
		Sent:           true,
		NotificationID: record.ID,
	}, nil
}

// release restores the previous last notification unless another send replaced it
func (s *service) release(text, previous string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == text {
		s.last = previous
	}
}
