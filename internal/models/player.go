package models

// PlayerStatus represents the canonical online status of the watched player
type PlayerStatus string

const (
	// PlayerStatusOffline indicates the player is offline
	PlayerStatusOffline PlayerStatus = "offline"

	// PlayerStatusOnline indicates the player is online
	PlayerStatusOnline PlayerStatus = "online"

	// PlayerStatusIdle indicates the player is away or idle
	PlayerStatusIdle PlayerStatus = "idle"

	// PlayerStatusDoNotDisturb indicates the player is busy
	PlayerStatusDoNotDisturb PlayerStatus = "dnd"

	// PlayerStatusInvisible indicates the player is online but hidden
	PlayerStatusInvisible PlayerStatus = "invisible"

	// PlayerStatusUnknown is used for any status we cannot map
	PlayerStatusUnknown PlayerStatus = "unknown"
)

// IsOffline returns true if the status is offline
func (s PlayerStatus) IsOffline() bool {
	return s == PlayerStatusOffline
}

// ParsePlayerStatus maps a gateway status string to a PlayerStatus.
// An empty string yields the empty status so callers can detect "not reported".
func ParsePlayerStatus(raw string) PlayerStatus {
	switch PlayerStatus(raw) {
	case "":
		return ""
	case PlayerStatusOffline, PlayerStatusOnline, PlayerStatusIdle,
		PlayerStatusDoNotDisturb, PlayerStatusInvisible:
		return PlayerStatus(raw)
	default:
		return PlayerStatusUnknown
	}
}

// PlayerState is the last known status and game of the watched player
type PlayerState struct {
	// Status is the canonical online status
	Status PlayerStatus

	// Game is the name of the active game, empty if none
	Game string

	// GameKnown is false until any source has reported a game (or its absence)
	GameKnown bool
}

// InitialPlayerState is the state before any source has reported
func InitialPlayerState() PlayerState {
	return PlayerState{
		Status: PlayerStatusOffline,
	}
}

// PlayerSummary is the normalized result of a Steam presence summary
type PlayerSummary struct {
	// PersonaState is the raw numeric Steam persona state
	PersonaState int

	// Game is the name of the game currently being played, if any
	Game string
}
