// Package httpapi serves health, metrics and the recent notification log
package httpapi

import (
	"net/http"

	"github.com/KirkDiggler/spyglass/internal/repositories/notification"
	"github.com/KirkDiggler/spyglass/internal/services/supervisor"
	"github.com/KirkDiggler/spyglass/internal/state"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SupervisorStatus is the read side of the watcher supervisor
type SupervisorStatus interface {
	State() supervisor.State
	Generation() uint64
	Active() []string
}

// LastNotifier reports the most recent delivered message
type LastNotifier interface {
	LastNotification() string
}

// Deps are the components the routes read from
type Deps struct {
	Supervisor    SupervisorStatus
	State         *state.Store
	Notifier      LastNotifier
	Notifications notification.Repository
	Metrics       http.Handler
}

func SetupRoutes(d *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz(d))
	r.Get("/notifications", RecentNotifications(d.Notifications))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}
	return r
}
