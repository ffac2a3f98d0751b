// Package steam is a minimal client for the Steam Web API player summaries endpoint.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/KirkDiggler/spyglass/internal/models"
)

const (
	// DefaultBaseURL is the public Steam Web API
	DefaultBaseURL = "https://api.steampowered.com"

	summariesPath  = "/ISteamUser/GetPlayerSummaries/v0002/"
	defaultTimeout = 15 * time.Second
)

// ErrPlayerNotFound is returned when the summary list does not contain the player
var ErrPlayerNotFound = errors.New("player not found in summary response")

// Config holds configuration for the Steam client
type Config struct {
	// APIKey is the Steam Web API key
	APIKey string

	// BaseURL defaults to DefaultBaseURL
	BaseURL string

	// HTTPClient defaults to a client with a 15s timeout
	HTTPClient *http.Client
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type summariesResponse struct {
	Response struct {
		Players []struct {
			SteamID       string `json:"steamid"`
			PersonaState  int    `json:"personastate"`
			GameExtraInfo string `json:"gameextrainfo"`
		} `json:"players"`
	} `json:"response"`
}

// New creates a new Steam client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("steam API key cannot be empty")
	}

	c := &client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return c, nil
}

// GetPlayerSummary fetches the summary for one player
func (c *client) GetPlayerSummary(ctx context.Context, steamID64 uint64) (*models.PlayerSummary, error) {
	id := strconv.FormatUint(steamID64, 10)

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamids", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+summariesPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the API key, so don't surface *url.Error verbatim
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, fmt.Errorf("failed to fetch player summary: %w", urlErr.Err)
		}
		return nil, fmt.Errorf("failed to fetch player summary: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read player summary: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching player summary", resp.StatusCode)
	}

	var decoded summariesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode player summary: %w", err)
	}

	for _, p := range decoded.Response.Players {
		if p.SteamID == id {
			return &models.PlayerSummary{
				PersonaState: p.PersonaState,
				Game:         p.GameExtraInfo,
			}, nil
		}
	}

	return nil, ErrPlayerNotFound
}

// StatusFromPersonaState maps a Steam persona state to a PlayerStatus.
// Unlisted codes map to offline.
func StatusFromPersonaState(state int) models.PlayerStatus {
	switch state {
	case 1, 5, 6:
		// online, looking to trade, looking to play
		return models.PlayerStatusOnline
	case 2:
		return models.PlayerStatusDoNotDisturb
	case 3, 4:
		// away, snooze
		return models.PlayerStatusIdle
	default:
		return models.PlayerStatusOffline
	}
}
