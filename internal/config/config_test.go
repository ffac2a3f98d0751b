package config

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	env map[string]string
}

func (s *ConfigTestSuite) SetupTest() {
	s.env = map[string]string{
		"DISCORD_TOKEN":    "token",
		"TARGET_GUILD":     "111",
		"OUTPUT_CHANNEL":   "222",
		"TARGET_USER":      "333",
		"TARGET_STEAMID32": "86745912",
	}
}

func (s *ConfigTestSuite) lookup(key string) (string, bool) {
	value, ok := s.env[key]
	return value, ok
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := FromLookup(s.lookup)
	s.Require().NoError(err)

	s.Equal("localization.json", cfg.LocalizationPath)
	s.Equal(":9090", cfg.HTTPAddr)
	s.Equal("info", cfg.LogLevel)
	s.Equal(SteamPollInterval, cfg.SteamPollInterval)
	s.Equal(MatchPollInterval, cfg.MatchPollInterval)
	s.False(cfg.SteamEnabled())
	s.Equal(uint64(86745912), cfg.TargetSteamID32)
	s.Equal(uint64(76561198047011640), cfg.SteamID64())
}

func (s *ConfigTestSuite) TestSteamID64() {
	for account, want := range map[string]uint64{
		"1":          76561197960265729,
		"86745912":   76561198047011640,
		"4294967295": 76561202255233023,
	} {
		s.env["TARGET_STEAMID32"] = account

		cfg, err := FromLookup(s.lookup)
		s.Require().NoError(err)
		s.Equal(want, cfg.SteamID64(), account)
	}
}

func (s *ConfigTestSuite) TestEmptyHTTPAddrDisablesServer() {
	s.env["HTTP_ADDR"] = ""

	cfg, err := FromLookup(s.lookup)
	s.Require().NoError(err)
	s.Empty(cfg.HTTPAddr)
}

func (s *ConfigTestSuite) TestMissingToken() {
	delete(s.env, "DISCORD_TOKEN")

	_, err := FromLookup(s.lookup)
	s.ErrorIs(err, ErrMissingToken)
}

func (s *ConfigTestSuite) TestMissingSteamID() {
	delete(s.env, "TARGET_STEAMID32")

	_, err := FromLookup(s.lookup)
	s.ErrorIs(err, ErrMissingSteamID)
}

func (s *ConfigTestSuite) TestMalformedIDs() {
	s.env["TARGET_GUILD"] = "not-a-number"
	_, err := FromLookup(s.lookup)
	s.Error(err)

	s.SetupTest()
	s.env["TARGET_STEAMID32"] = "76561198047011640"
	_, err = FromLookup(s.lookup)
	s.Error(err)
}

func (s *ConfigTestSuite) TestEmojiMustBePaired() {
	s.env["EMOJI_ID"] = "444"

	_, err := FromLookup(s.lookup)
	s.ErrorIs(err, ErrMissingEmoji)

	s.env["EMOJI_NAME"] = "pog"
	cfg, err := FromLookup(s.lookup)
	s.Require().NoError(err)
	s.Equal("pog", cfg.EmojiName)
}

func (s *ConfigTestSuite) TestInvalidLogLevel() {
	s.env["LOG_LEVEL"] = "loud"

	_, err := FromLookup(s.lookup)
	s.ErrorIs(err, ErrInvalidLevel)
}
