package steam

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/spyglass/internal/clients/steam Client

import (
	"context"

	"github.com/KirkDiggler/spyglass/internal/models"
)

// Client reads a player's Steam presence summary
type Client interface {
	// GetPlayerSummary returns the persona state and current game for a 64-bit Steam id
	GetPlayerSummary(ctx context.Context, steamID64 uint64) (*models.PlayerSummary, error)
}
