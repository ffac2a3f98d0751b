package localization

// Fixture returns a fully populated English bundle for tests
func Fixture() *Bundle {
	return &Bundle{
		BotActivity:   "watching",
		Plays:         "playing",
		Won:           "won",
		Lost:          "lost",
		PlayedOn:      "Played on",
		WithScore:     "with score",
		MatchDuration: "Match lasted",
		Minutes:       "minutes",
		TargetName:    "Gaben",
		Offline:       "is now Offline",
		Idle:          "is now Idle",
		Invisible:     "is now Invisible",
		Online:        "is now Online",
		DoNotDisturb:  "is now Busy",
		Unknown:       "is now Unknown",
		OnSteam:       "on Steam",
		FromMobile:    " from mobile",
		FromWeb:       " from browser",
		FromDesktop:   "",
	}
}
