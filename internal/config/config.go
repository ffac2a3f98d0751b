package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Philipp15b/go-steam/v3/protocol/steamlang"
	"github.com/Philipp15b/go-steam/v3/steamid"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	// SteamPollInterval is how often the Steam presence summary is polled
	SteamPollInterval = 30 * time.Second

	// MatchPollInterval is how often the recent match list is polled
	MatchPollInterval = 60 * time.Second

	defaultLocalizationPath = "localization.json"
	defaultHTTPAddr         = ":9090"
	defaultLogLevel         = "info"

	// desktopInstance is the account instance of every individual user id
	desktopInstance = 1
)

// Config is the validated process configuration
type Config struct {
	// Discord bot token
	Token string

	// TargetGuild is the guild whose presence updates are watched
	TargetGuild string

	// OutputChannel receives all notifications
	OutputChannel string

	// TargetUser is the Discord user being watched
	TargetUser string

	// TargetSteamID32 is the watched player's 32-bit Steam account id
	TargetSteamID32 uint64

	// Reaction added to every message the target user posts. Optional.
	EmojiID   string
	EmojiName string

	// SteamAPIKey enables the Steam presence poller when set
	SteamAPIKey string

	LocalizationPath string

	// Optional Redis for the notification log; in-memory when empty
	RedisAddr     string
	RedisPassword string

	// HTTPAddr serves health and metrics; empty disables the server
	HTTPAddr string

	LogLevel string

	SteamPollInterval time.Duration
	MatchPollInterval time.Duration
}

// Load reads a .env file if present, then builds and validates the config from the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds the config from an environment lookup function
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		Token:             get("DISCORD_TOKEN", ""),
		TargetGuild:       get("TARGET_GUILD", ""),
		OutputChannel:     get("OUTPUT_CHANNEL", ""),
		TargetUser:        get("TARGET_USER", ""),
		EmojiID:           get("EMOJI_ID", ""),
		EmojiName:         get("EMOJI_NAME", ""),
		SteamAPIKey:       get("STEAM_API_KEY", ""),
		LocalizationPath:  get("LOCALIZATION_PATH", defaultLocalizationPath),
		RedisAddr:         get("REDIS_ADDR", ""),
		RedisPassword:     get("REDIS_PASSWORD", ""),
		LogLevel:          get("LOG_LEVEL", defaultLogLevel),
		SteamPollInterval: SteamPollInterval,
		MatchPollInterval: MatchPollInterval,
	}

	// HTTP_ADDR may be set to an empty value on purpose to disable the server
	if value, ok := lookup("HTTP_ADDR"); ok {
		cfg.HTTPAddr = value
	} else {
		cfg.HTTPAddr = defaultHTTPAddr
	}

	steamID := get("TARGET_STEAMID32", "")
	if steamID == "" {
		return nil, ErrMissingSteamID
	}
	parsed, err := strconv.ParseUint(steamID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("TARGET_STEAMID32 is not a 32-bit account id: %w", err)
	}
	cfg.TargetSteamID32 = parsed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required settings and the shape of numeric ids
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}

	required := []struct {
		name  string
		value string
		err   ConfigError
	}{
		{"TARGET_GUILD", c.TargetGuild, ErrMissingGuild},
		{"OUTPUT_CHANNEL", c.OutputChannel, ErrMissingChannel},
		{"TARGET_USER", c.TargetUser, ErrMissingUser},
	}
	for _, r := range required {
		if r.value == "" {
			return r.err
		}
		if _, err := strconv.ParseUint(r.value, 10, 64); err != nil {
			return fmt.Errorf("%s is not a snowflake id: %w", r.name, err)
		}
	}

	if (c.EmojiID == "") != (c.EmojiName == "") {
		return ErrMissingEmoji
	}
	if c.EmojiID != "" {
		if _, err := strconv.ParseUint(c.EmojiID, 10, 64); err != nil {
			return fmt.Errorf("EMOJI_ID is not a snowflake id: %w", err)
		}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return ErrInvalidLevel
	}

	return nil
}

// SteamEnabled reports whether the Steam poller should run
func (c *Config) SteamEnabled() bool {
	return c.SteamAPIKey != ""
}

// SteamID64 converts the 32-bit account id to the 64-bit id the Steam Web API
// expects: an individual account in the public universe
func (c *Config) SteamID64() uint64 {
	id := steamid.NewIdAdv(
		uint32(c.TargetSteamID32),
		desktopInstance,
		int32(steamlang.EUniverse_Public),
		int32(steamlang.EAccountType_Individual),
	)
	return uint64(id)
}
