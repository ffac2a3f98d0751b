package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/spyglass/internal/services/notifier Service,MessageSender

import "context"

// Service delivers notification text to the output channel
type Service interface {
	// Send delivers a message, optionally suppressing it when it repeats the last one sent
	Send(ctx context.Context, input *SendInput) (*SendOutput, error)

	// LastNotification returns the text of the most recently sent message
	LastNotification() string
}

// MessageSender is the outbound message sink
type MessageSender interface {
	// SendMessage posts text to a channel
	SendMessage(ctx context.Context, channelID, text string, tts bool) error
}
