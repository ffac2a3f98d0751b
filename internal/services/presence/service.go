// Package presence turns gateway presence updates into status announcements
package presence

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/spyglass/internal/localization"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/services/notifier"
	"github.com/KirkDiggler/spyglass/internal/state"
	"github.com/charmbracelet/log"
)

type service struct {
	targetGuild string
	targetUser  string
	state       *state.Store
	notifier    notifier.Service
	locals      *localization.Bundle
	metrics     metrics.Metrics
}

// New creates a new presence service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.TargetGuild == "" {
		return nil, ErrEmptyGuild
	}
	if cfg.TargetUser == "" {
		return nil, ErrEmptyUser
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

	return &service{
		targetGuild: cfg.TargetGuild,
		targetUser:  cfg.TargetUser,
		state:       cfg.State,
		notifier:    cfg.Notifier,
		locals:      cfg.Localization,
		metrics:     cfg.Metrics,
	}, nil
}

// HandlePresence processes a single presence update for the watched user
func (s *service) HandlePresence(ctx context.Context, input *HandlePresenceInput) (*HandlePresenceOutput, error) {
	if input == nil || input.Presence == nil {
		return nil, ErrNilPresence
	}
	p := input.Presence

	if p.GuildID != s.targetGuild || p.UserID != s.targetUser {
		return &HandlePresenceOutput{Reason: ReasonOtherSubject}, nil
	}

	status, device := effectiveStatus(p)
	activity := richestActivity(p.Activities)

	var game string
	if activity != nil {
		game = strings.TrimSpace(activityName(activity))
	}

	sameGame := false
	_, kind := s.state.Reconcile(func(current models.PlayerState) models.PlayerState {
		if current.GameKnown && current.Game == game {
			sameGame = true
			return current
		}
		return models.PlayerState{Status: status, Game: game, GameKnown: true}
	})
	if sameGame {
		log.Debug("Presence update repeats tracked game", "game", game)
		s.metrics.IncNotificationsSuppressed(string(models.NotificationSourcePresence))
		return &HandlePresenceOutput{Reason: ReasonSameGame}, nil
	}

	text := s.compose(status, device, game, activity)
	log.Info("Presence changed", "change", kind, "status", status, "device", device, "game", game)

	out, err := s.notifier.Send(ctx, &notifier.SendInput{
		Source: models.NotificationSourcePresence,
		Text:   text,
		TTS:    game != "",
		Dedup:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to announce presence: %w", err)
	}

	output := &HandlePresenceOutput{
		Sent:   out.Sent,
		Text:   text,
		Change: kind,
	}
	if out.Suppressed {
		output.Reason = ReasonDuplicateText
	}

	return output, nil
}

// compose renders the first line as "<target> <status><device>[ <plays> <game>]"
// followed by the non-blank detail lines. The plays clause needs a game name.
func (s *service) compose(status models.PlayerStatus, device models.Device, game string, activity *models.Activity) string {
	head := s.locals.TargetName + " " + s.locals.Status(status) + s.locals.Device(device)
	if game != "" {
		head += " " + s.locals.Plays + " " + game
	}
	if activity == nil {
		return head
	}

	lines := []string{head}
	if activity.Type != models.ActivityTypeCustom {
		for _, line := range []string{activity.Details, activity.LargeText, activity.SmallText} {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// effectiveStatus prefers a per-device status in the order mobile, web, desktop
func effectiveStatus(p *models.Presence) (models.PlayerStatus, models.Device) {
	if cs := p.ClientStatus; cs != nil {
		switch {
		case cs.Mobile != "":
			return cs.Mobile, models.DeviceMobile
		case cs.Web != "":
			return cs.Web, models.DeviceWeb
		case cs.Desktop != "":
			return cs.Desktop, models.DeviceDesktop
		}
	}

	return p.Status, models.DeviceNone
}

// richestActivity picks a non-custom activity over a custom one, then the one
// with the most populated text fields. Ties keep the earliest.
func richestActivity(activities []models.Activity) *models.Activity {
	var (
		best      *models.Activity
		bestScore int
	)
	for i := range activities {
		a := &activities[i]
		score := richness(a)
		if best == nil || score > bestScore {
			best, bestScore = a, score
		}
	}

	return best
}

func richness(a *models.Activity) int {
	score := 0
	if a.Type != models.ActivityTypeCustom {
		score += 10
	}
	for _, field := range []string{a.Name, a.Details, a.State, a.LargeText, a.SmallText} {
		if field != "" {
			score++
		}
	}
	return score
}

// activityName is the label announced as the game. Custom statuses carry
// their text in the detail field, falling back to state.
func activityName(a *models.Activity) string {
	if a.Type != models.ActivityTypeCustom {
		return a.Name
	}
	if a.Details != "" {
		return a.Details
	}
	return a.State
}
