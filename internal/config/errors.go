package config

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrMissingToken   ConfigError = "DISCORD_TOKEN is required"
	ErrMissingGuild   ConfigError = "TARGET_GUILD is required"
	ErrMissingChannel ConfigError = "OUTPUT_CHANNEL is required"
	ErrMissingUser    ConfigError = "TARGET_USER is required"
	ErrMissingSteamID ConfigError = "TARGET_STEAMID32 is required"
	ErrMissingEmoji   ConfigError = "EMOJI_ID and EMOJI_NAME must be set together"
	ErrInvalidLevel   ConfigError = "LOG_LEVEL must be one of debug, info, warn, error"
)
