package opendota

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/spyglass/internal/clients/opendota Client

import (
	"context"

	"github.com/KirkDiggler/spyglass/internal/models"
)

// Client reads match history and the hero catalog
type Client interface {
	// GetRecentMatches returns the player's recent matches, newest first
	GetRecentMatches(ctx context.Context, accountID uint64) ([]models.Match, error)

	// GetHeroes returns the full hero catalog
	GetHeroes(ctx context.Context) ([]models.Hero, error)
}
