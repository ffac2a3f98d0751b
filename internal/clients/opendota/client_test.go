package opendota

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/time/rate"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  Client
}

func (s *ClientTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	c, err := New(&Config{
		BaseURL: s.server.URL,
		Limiter: rate.NewLimiter(rate.Inf, 1),
	})
	s.Require().NoError(err)
	s.client = c
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestGetRecentMatches() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/players/86745912/recentMatches", r.URL.Path)
		w.Write([]byte(`[
			{"match_id": 7001, "player_slot": 2, "radiant_win": true, "hero_id": 14,
			 "duration": 754, "kills": 10, "deaths": 2, "assists": 7, "game_mode": 22},
			{"match_id": 7000, "player_slot": 130, "radiant_win": true, "hero_id": 1,
			 "duration": 2400, "kills": 1, "deaths": 9, "assists": 3}
		]`))
	}

	matches, err := s.client.GetRecentMatches(context.Background(), 86745912)
	s.Require().NoError(err)
	s.Require().Len(matches, 2)

	s.Equal(int64(7001), matches[0].MatchID)
	s.Equal(int64(2), matches[0].PlayerSlot)
	s.True(matches[0].RadiantWin)
	s.Equal(int64(14), matches[0].HeroID)
	s.Equal(int64(754), matches[0].Duration)
	s.Equal(int64(10), matches[0].Kills)
	s.Equal(int64(2), matches[0].Deaths)
	s.Equal(int64(7), matches[0].Assists)
	s.Equal(int64(130), matches[1].PlayerSlot)
}

func (s *ClientTestSuite) TestGetHeroes() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/heroes", r.URL.Path)
		w.Write([]byte(`[{"id": 1, "name": "npc_dota_hero_antimage", "localized_name": "Anti-Mage"},
			{"id": 14, "localized_name": "Pudge"}]`))
	}

	heroes, err := s.client.GetHeroes(context.Background())
	s.Require().NoError(err)
	s.Require().Len(heroes, 2)
	s.Equal(int64(14), heroes[1].ID)
	s.Equal("Pudge", heroes[1].LocalizedName)
}

func (s *ClientTestSuite) TestNonOKStatus() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}

	_, err := s.client.GetHeroes(context.Background())
	s.Require().Error(err)
	s.Contains(err.Error(), "429")
}

func (s *ClientTestSuite) TestMalformedBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "not a list"}`))
	}

	_, err := s.client.GetRecentMatches(context.Background(), 1)
	s.Error(err)
}

func (s *ClientTestSuite) TestCancelledContext() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.GetHeroes(ctx)
	s.Error(err)
}
