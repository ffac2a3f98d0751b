package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/repositories/notification"
	notifierMocks "github.com/KirkDiggler/spyglass/internal/services/notifier/mocks"
	"github.com/KirkDiggler/spyglass/internal/services/supervisor"
	"github.com/KirkDiggler/spyglass/internal/state"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakeSupervisor struct {
	state supervisor.State
}

func (f *fakeSupervisor) State() supervisor.State { return f.state }
func (f *fakeSupervisor) Generation() uint64      { return 3 }
func (f *fakeSupervisor) Active() []string        { return []string{"match", "steam"} }

type RoutesTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	notifier   *notifierMocks.MockService
	supervisor *fakeSupervisor
	store      *state.Store
	repo       notification.Repository
	server     *httptest.Server
}

func (s *RoutesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.notifier = notifierMocks.NewMockService(s.mockCtrl)
	s.supervisor = &fakeSupervisor{state: supervisor.StateRunning}
	s.store = state.New()
	s.repo = notification.NewMemory(10)

	registry := prometheus.NewRegistry()
	m := metrics.NewService(registry)
	m.IncWatcherRestarts()

	s.server = httptest.NewServer(SetupRoutes(&Deps{
		Supervisor:    s.supervisor,
		State:         s.store,
		Notifier:      s.notifier,
		Notifications: s.repo,
		Metrics:       metrics.NewMetricsHandler(registry),
	}))
}

func (s *RoutesTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func (s *RoutesTestSuite) get(path string) *http.Response {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	return resp
}

func (s *RoutesTestSuite) TestHealthz() {
	s.store.CompareAndUpdate(models.PlayerStatusOnline, "Terraria")
	s.notifier.EXPECT().LastNotification().Return("Gaben is now Online playing Terraria on Steam")

	resp := s.get("/healthz")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var body healthResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("ok", body.Status)
	s.Equal(supervisor.StateRunning, body.Watchers)
	s.Equal(uint64(3), body.Generation)
	s.Equal([]string{"match", "steam"}, body.Tasks)
	s.Equal(models.PlayerStatusOnline, body.Player.Status)
	s.Equal("Terraria", body.Player.Game)
	s.Equal("Gaben is now Online playing Terraria on Steam", body.LastNotification)
}

func (s *RoutesTestSuite) TestHealthzStopped() {
	s.supervisor.state = supervisor.StateStopped
	s.notifier.EXPECT().LastNotification().Return("")

	resp := s.get("/healthz")
	defer resp.Body.Close()
	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)
}

func (s *RoutesTestSuite) TestNotifications() {
	ctx := context.Background()
	for _, text := range []string{"first", "second", "third"} {
		s.Require().NoError(s.repo.SaveNotification(ctx, &notification.SaveNotificationInput{
			Notification: &models.Notification{
				ID:     text,
				Source: models.NotificationSourcePresence,
				Text:   text,
				SentAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		}))
	}

	resp := s.get("/notifications?limit=2")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var body []models.Notification
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Require().Len(body, 2)
	s.Equal("third", body[0].Text)
	s.Equal("second", body[1].Text)
}

func (s *RoutesTestSuite) TestNotificationsEmpty() {
	resp := s.get("/notifications")
	defer resp.Body.Close()

	var body []models.Notification
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.NotNil(body)
	s.Empty(body)
}

func (s *RoutesTestSuite) TestNotificationsBadLimit() {
	resp := s.get("/notifications?limit=abc")
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *RoutesTestSuite) TestMetrics() {
	resp := s.get("/metrics")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), "spyglass_watcher_restarts_total 1")
}
