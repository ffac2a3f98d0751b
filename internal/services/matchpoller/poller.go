// Package matchpoller watches the player's match history and announces every
// newly finished match.
package matchpoller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/spyglass/internal/clients/opendota"
	"github.com/KirkDiggler/spyglass/internal/localization"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/services/notifier"
	"github.com/charmbracelet/log"
)

// Poller is a supervisor task that polls recent matches on a fixed interval.
// The cursor and hero catalog outlive a single Run, so a restart neither
// re-seeds nor refetches.
type Poller struct {
	client    opendota.Client
	notifier  notifier.Service
	locals    *localization.Bundle
	metrics   metrics.Metrics
	accountID uint64
	interval  time.Duration

	mu     sync.Mutex
	cursor cursor

	heroesMu sync.Mutex
	heroes   map[int64]string
}

// New creates a new match poller
func New(cfg *Config) (*Poller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.Localization == nil {
		return nil, ErrNilLocalization
	}
	if cfg.Metrics == nil {
		return nil, ErrNilMetrics
	}
	if cfg.Interval <= 0 {
		return nil, ErrInvalidInterval
	}

	return &Poller{
		client:    cfg.Client,
		notifier:  cfg.Notifier,
		locals:    cfg.Localization,
		metrics:   cfg.Metrics,
		accountID: cfg.AccountID,
		interval:  cfg.Interval,
	}, nil
}

// Name implements supervisor.Task
func (p *Poller) Name() string {
	return Name
}

// Run polls immediately and then on every tick until ctx is cancelled
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info("Match poller started", "interval", p.interval)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := p.Poll(ctx); err != nil {
			log.Error("Match poll failed", "err", err)
		}

		select {
		case <-ctx.Done():
			log.Info("Match poller stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Poll runs a single tick
func (p *Poller) Poll(ctx context.Context) (*PollOutput, error) {
	p.metrics.IncPollerRuns(Name)

	heroes, err := p.heroCatalog(ctx)
	if err != nil {
		p.metrics.IncPollerErrors(Name)
		return nil, fmt.Errorf("failed to load hero catalog: %w", err)
	}

	matches, err := p.client.GetRecentMatches(ctx, p.accountID)
	if err != nil {
		p.metrics.IncPollerErrors(Name)
		return nil, fmt.Errorf("failed to get recent matches: %w", err)
	}
	if len(matches) == 0 {
		log.Warn("No recent matches returned", "account", p.accountID)
		return &PollOutput{}, nil
	}

	newest := matches[0]
	output := &PollOutput{MatchID: newest.MatchID}

	p.mu.Lock()
	switch {
	case ctx.Err() != nil:
		output.Discarded = true
	case !p.cursor.seeded:
		p.cursor = cursor{id: newest.MatchID, seeded: true}
		output.Seeded = true
	case p.cursor.id == newest.MatchID:
	default:
		p.cursor.id = newest.MatchID
		output.Announced = true
	}
	p.mu.Unlock()

	if output.Discarded {
		log.Debug("Discarding match result from cancelled poller")
		return output, nil
	}
	if output.Seeded {
		log.Info("Match cursor seeded", "match_id", newest.MatchID)
		return output, nil
	}
	if !output.Announced {
		return output, nil
	}

	output.Text = p.compose(&newest, heroes)
	log.Info("New match finished", "match_id", newest.MatchID, "won", newest.Won())

	if _, err := p.notifier.Send(context.WithoutCancel(ctx), &notifier.SendInput{
		Source: models.NotificationSourceMatch,
		Text:   output.Text,
		TTS:    true,
	}); err != nil {
		return nil, fmt.Errorf("failed to announce match %d: %w", newest.MatchID, err)
	}

	return output, nil
}

// heroCatalog returns the cached catalog, fetching it while it is absent.
// The lock is not held over the request.
func (p *Poller) heroCatalog(ctx context.Context) (map[int64]string, error) {
	p.heroesMu.Lock()
	heroes := p.heroes
	p.heroesMu.Unlock()
	if heroes != nil {
		return heroes, nil
	}

	list, err := p.client.GetHeroes(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyCatalog
	}

	heroes = make(map[int64]string, len(list))
	for _, hero := range list {
		heroes[hero.ID] = hero.LocalizedName
	}

	p.heroesMu.Lock()
	defer p.heroesMu.Unlock()
	if p.heroes == nil {
		p.heroes = heroes
	}

	return p.heroes, nil
}

func (p *Poller) compose(match *models.Match, heroes map[int64]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s. ", p.locals.TargetName, p.locals.Outcome(match.Won()))

	if hero, ok := heroes[match.HeroID]; ok {
		fmt.Fprintf(&b, "%s %s ", p.locals.PlayedOn, hero)
	} else {
		log.Error("Unknown hero in match", "hero_id", match.HeroID, "match_id", match.MatchID)
	}

	fmt.Fprintf(&b, "%s %d, %d, %d. ", p.locals.WithScore, match.Kills, match.Deaths, match.Assists)
	fmt.Fprintf(&b, "%s %d %s.", p.locals.MatchDuration, match.DurationMinutes(), p.locals.Minutes)

	return b.String()
}
