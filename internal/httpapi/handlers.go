package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/KirkDiggler/spyglass/internal/repositories/notification"
	"github.com/KirkDiggler/spyglass/internal/services/supervisor"
	"github.com/charmbracelet/log"
)

const maxLimit = notification.DefaultMaxEntries

type healthResponse struct {
	Status     string           `json:"status"`
	Watchers   supervisor.State `json:"watchers"`
	Generation uint64           `json:"generation"`
	Tasks      []string         `json:"tasks"`
	Player     playerResponse   `json:"player"`

	LastNotification string `json:"last_notification,omitempty"`
}

type playerResponse struct {
	Status models.PlayerStatus `json:"status"`
	Game   string              `json:"game,omitempty"`
}

// Healthz reports the watcher lifecycle, the tracked player state and the
// last message sent.
// A stopped supervisor is unhealthy.
func Healthz(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok"}
		code := http.StatusOK

		if d.Supervisor != nil {
			resp.Watchers = d.Supervisor.State()
			resp.Generation = d.Supervisor.Generation()
			resp.Tasks = d.Supervisor.Active()
			if resp.Watchers == supervisor.StateStopped {
				resp.Status = "stopped"
				code = http.StatusServiceUnavailable
			}
		}
		if d.State != nil {
			current := d.State.Read()
			resp.Player = playerResponse{Status: current.Status, Game: current.Game}
		}
		if d.Notifier != nil {
			resp.LastNotification = d.Notifier.LastNotification()
		}

		writeJSON(w, code, resp)
	}
}

// RecentNotifications lists the delivered notifications, newest first
func RecentNotifications(repo notification.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			http.Error(w, "notification log disabled", http.StatusNotFound)
			return
		}

		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = min(n, maxLimit)
		}

		out, err := repo.GetRecentNotifications(r.Context(), &notification.GetRecentNotificationsInput{
			Limit: limit,
		})
		if err != nil {
			log.Error("Failed to read notification log", "err", err)
			http.Error(w, "failed to read notifications", http.StatusInternalServerError)
			return
		}

		notifications := out.Notifications
		if notifications == nil {
			notifications = []*models.Notification{}
		}
		writeJSON(w, http.StatusOK, notifications)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
