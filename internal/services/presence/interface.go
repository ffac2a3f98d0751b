package presence

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/spyglass/internal/services/presence Service

import "context"

// Service reconciles gateway presence updates with the shared player state
type Service interface {
	// HandlePresence processes a single presence update for the watched user
	HandlePresence(ctx context.Context, input *HandlePresenceInput) (*HandlePresenceOutput, error)
}
