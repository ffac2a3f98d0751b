// Package steampoller polls the Steam presence summary and announces status and
// game changes, filtering the endpoint's noisier signals.
package steampoller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/spyglass/internal/clients/steam"
	"github.com/KirkDiggler/spyglass/internal/localization"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/services/notifier"
	"github.com/KirkDiggler/spyglass/internal/state"
	"github.com/charmbracelet/log"
)

// Poller is a supervisor task that polls Steam on a fixed interval
type Poller struct {
	client   steam.Client
	state    *state.Store
	notifier notifier.Service
	locals   *localization.Bundle
	metrics  metrics.Metrics
	steamID  uint64
	interval time.Duration

	// pendingOffline is only touched inside state.Reconcile, so the store's
	// lock serializes it across poller instances.
	pendingOffline bool
}

// New creates a new steam poller
func New(cfg *Config) (*Poller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.State == nil {
		return nil, ErrNilState
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
		client:   cfg.Client,
		state:    cfg.State,
		notifier: cfg.Notifier,
		locals:   cfg.Localization,
		metrics:  cfg.Metrics,
		steamID:  cfg.SteamID64,
		interval: cfg.Interval,
	}, nil
}

// Name implements supervisor.Task
func (p *Poller) Name() string {
	return Name
}

// Run polls immediately and then on every tick until ctx is cancelled.
// A failed poll is logged and never ends the loop.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info("Steam poller started", "interval", p.interval)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := p.Poll(ctx); err != nil {
			log.Error("Steam poll failed", "err", err)
		}

		select {
		case <-ctx.Done():
			log.Info("Steam poller stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Poll fetches the summary once and reconciles it with the shared state
func (p *Poller) Poll(ctx context.Context) (*PollOutput, error) {
	p.metrics.IncPollerRuns(Name)

	summary, err := p.client.GetPlayerSummary(ctx, p.steamID)
	if err != nil {
		p.metrics.IncPollerErrors(Name)
		return nil, err
	}

	status := steam.StatusFromPersonaState(summary.PersonaState)

	var (
		discarded bool
		next      models.PlayerState
	)
	_, kind := p.state.Reconcile(func(current models.PlayerState) models.PlayerState {
		if ctx.Err() != nil {
			discarded = true
			return current
		}
		next = p.filter(current, status, summary.Game)
		return next
	})

	if discarded {
		log.Debug("Discarding steam result from cancelled poller")
		return &PollOutput{Discarded: true}, nil
	}
	if kind == state.NoChange {
		return &PollOutput{Change: kind}, nil
	}

	text := p.compose(next)
	log.Info("Steam presence changed", "change", kind, "status", next.Status, "game", next.Game)

	// The change is already committed, so announce it even if a restart cancels ctx now
	if _, err := p.notifier.Send(context.WithoutCancel(ctx), &notifier.SendInput{
		Source: models.NotificationSourceSteam,
		Text:   text,
		Dedup:  true,
	}); err != nil {
		return nil, fmt.Errorf("failed to announce steam change: %w", err)
	}

	return &PollOutput{
		Change: kind,
		Text:   text,
	}, nil
}

// filter applies the low-confidence rules for this source. An empty game never
// clears a tracked one, and offline only replaces a non-offline status when two
// consecutive reads agree.
func (p *Poller) filter(current models.PlayerState, status models.PlayerStatus, game string) models.PlayerState {
	next := current

	if game != "" {
		next.Game = game
		next.GameKnown = true
	}

	if status.IsOffline() && !current.Status.IsOffline() {
		if !p.pendingOffline {
			p.pendingOffline = true
			return next
		}
		p.pendingOffline = false
		next.Status = status
		return next
	}

	p.pendingOffline = false
	next.Status = status
	return next
}

func (p *Poller) compose(s models.PlayerState) string {
	parts := []string{p.locals.TargetName, p.locals.Status(s.Status)}
	if s.Game != "" {
		parts = append(parts, p.locals.Plays, s.Game)
	}
	if p.locals.OnSteam != "" {
		parts = append(parts, p.locals.OnSteam)
	}

	return strings.Join(parts, " ")
}
