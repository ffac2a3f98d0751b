// Package localization loads the read-only message template bundle.
package localization

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/KirkDiggler/spyglass/internal/models"
)

// Bundle holds every localized string the bot renders
type Bundle struct {
	BotActivity string `json:"bot_activity"`
	Plays       string `json:"plays"`

	Won           string `json:"won"`
	Lost          string `json:"lost"`
	PlayedOn      string `json:"played_on"`
	WithScore     string `json:"with_score"`
	MatchDuration string `json:"match_duration"`
	Minutes       string `json:"minutes"`

	TargetName   string `json:"target_name"`
	Offline      string `json:"offline"`
	Idle         string `json:"idle"`
	Invisible    string `json:"invisible"`
	Online       string `json:"online"`
	DoNotDisturb string `json:"donotdisturb"`
	Unknown      string `json:"unknown"`

	OnSteam     string `json:"on_steam"`
	FromMobile  string `json:"from_mobile"`
	FromWeb     string `json:"from_web"`
	FromDesktop string `json:"from_desktop"`
}

// Load reads and validates a bundle from a JSON file
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read localization file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a bundle
func Parse(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("invalid localization file: %w", err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &b, nil
}

// Validate ensures the strings used in every message are present.
// Device labels and on_steam may be empty.
func (b *Bundle) Validate() error {
	required := map[string]string{
		"target_name":    b.TargetName,
		"plays":          b.Plays,
		"won":            b.Won,
		"lost":           b.Lost,
		"played_on":      b.PlayedOn,
		"with_score":     b.WithScore,
		"match_duration": b.MatchDuration,
		"minutes":        b.Minutes,
		"offline":        b.Offline,
		"idle":           b.Idle,
		"invisible":      b.Invisible,
		"online":         b.Online,
		"donotdisturb":   b.DoNotDisturb,
		"unknown":        b.Unknown,
	}

	var errs []error
	for key, value := range required {
		if value == "" {
			errs = append(errs, fmt.Errorf("localization key %q is missing", key))
		}
	}

	return errors.Join(errs...)
}

// Status returns the label for a status
func (b *Bundle) Status(status models.PlayerStatus) string {
	switch status {
	case models.PlayerStatusOffline:
		return b.Offline
	case models.PlayerStatusOnline:
		return b.Online
	case models.PlayerStatusIdle:
		return b.Idle
	case models.PlayerStatusDoNotDisturb:
		return b.DoNotDisturb
	case models.PlayerStatusInvisible:
		return b.Invisible
	default:
		return b.Unknown
	}
}

// Device returns the label appended to a status reported from a specific device
func (b *Bundle) Device(device models.Device) string {
	switch device {
	case models.DeviceMobile:
		return b.FromMobile
	case models.DeviceWeb:
		return b.FromWeb
	case models.DeviceDesktop:
		return b.FromDesktop
	default:
		return ""
	}
}

// Outcome returns the won or lost term
func (b *Bundle) Outcome(won bool) string {
	if won {
		return b.Won
	}
	return b.Lost
}
