package models

// Match is a single entry of a player's recent match list
type Match struct {
	MatchID    int64 `json:"match_id"`
	PlayerSlot int64 `json:"player_slot"`
	RadiantWin bool  `json:"radiant_win"`
	HeroID     int64 `json:"hero_id"`

	// Duration is the match length in seconds
	Duration int64 `json:"duration"`

	Kills   int64 `json:"kills"`
	Deaths  int64 `json:"deaths"`
	Assists int64 `json:"assists"`
}

// IsRadiant reports whether the player was on the radiant side
func (m *Match) IsRadiant() bool {
	return m.PlayerSlot < 5
}

// Won reports whether the player's side won the match
func (m *Match) Won() bool {
	return m.RadiantWin == m.IsRadiant()
}

// DurationMinutes returns the match duration in whole minutes, truncated
func (m *Match) DurationMinutes() int64 {
	return m.Duration / 60
}

// Hero is an entry of the hero catalog
type Hero struct {
	ID            int64  `json:"id"`
	LocalizedName string `json:"localized_name"`
}
