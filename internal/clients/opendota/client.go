// Package opendota is a minimal client for the OpenDota REST API.
package opendota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/KirkDiggler/spyglass/internal/models"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public OpenDota API
	DefaultBaseURL = "https://api.opendota.com/api"

	defaultTimeout = 15 * time.Second

	// The free tier allows 60 requests per minute
	defaultRequestsPerSecond = 1
)

// Config holds configuration for the OpenDota client
type Config struct {
	// BaseURL defaults to DefaultBaseURL
	BaseURL string

	// HTTPClient defaults to a client with a 15s timeout
	HTTPClient *http.Client

	// Limiter paces outbound requests; defaults to one per second
	Limiter *rate.Limiter
}

type client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a new OpenDota client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	c := &client{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		limiter:    cfg.Limiter,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond)
	}

	return c, nil
}

// GetRecentMatches fetches /players/{id}/recentMatches
func (c *client) GetRecentMatches(ctx context.Context, accountID uint64) ([]models.Match, error) {
	var matches []models.Match
	if err := c.get(ctx, fmt.Sprintf("/players/%d/recentMatches", accountID), &matches); err != nil {
		return nil, fmt.Errorf("failed to fetch recent matches: %w", err)
	}
	return matches, nil
}

// GetHeroes fetches /heroes
func (c *client) GetHeroes(ctx context.Context) ([]models.Hero, error) {
	var heroes []models.Hero
	if err := c.get(ctx, "/heroes", &heroes); err != nil {
		return nil, fmt.Errorf("failed to fetch heroes: %w", err)
	}
	return heroes, nil
}

func (c *client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
