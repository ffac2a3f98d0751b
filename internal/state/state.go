// Package state holds the in-memory record of the watched player's last known
// status and game, shared by the gateway handler and both pollers.
package state

import (
	"sync"

	"github.com/KirkDiggler/spyglass/internal/models"
)

// ChangeKind describes which fields a reconciliation changed
type ChangeKind int

const (
	NoChange ChangeKind = iota
	StatusChanged
	GameChanged
	Both
)

// String returns a readable name for logs
func (k ChangeKind) String() string {
	switch k {
	case StatusChanged:
		return "status"
	case GameChanged:
		return "game"
	case Both:
		return "status+game"
	default:
		return "none"
	}
}

// StatusChanged reports whether the status moved
func (k ChangeKind) StatusChanged() bool {
	return k == StatusChanged || k == Both
}

// GameChanged reports whether the game moved
func (k ChangeKind) GameChanged() bool {
	return k == GameChanged || k == Both
}

// Store is the shared player state. All mutation happens under one mutex so a
// status and game from the same source event always move together.
type Store struct {
	mu    sync.Mutex
	state models.PlayerState
}

// New creates a store in the initial offline, game-unknown state
func New() *Store {
	return &Store{
		state: models.InitialPlayerState(),
	}
}

// Read returns a snapshot of the current state
func (s *Store) Read() models.PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// CompareAndUpdate stores the given status and game if either differs from the
// current values, reporting what changed. It is the plain-update form of
// Reconcile for a writer that trusts its observation outright; the pollers and
// the presence handler apply their filters through Reconcile instead.
func (s *Store) CompareAndUpdate(status models.PlayerStatus, game string) ChangeKind {
	_, kind := s.Reconcile(func(models.PlayerState) models.PlayerState {
		return models.PlayerState{
			Status:    status,
			Game:      game,
			GameKnown: true,
		}
	})
	return kind
}

// Reconcile calls fn with the current state under the lock and stores what it
// returns. fn must not block; returning the current value leaves the store untouched.
func (s *Store) Reconcile(fn func(current models.PlayerState) models.PlayerState) (models.PlayerState, ChangeKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.state
	next := fn(previous)
	kind := diff(previous, next)
	if kind != NoChange {
		s.state = next
	}

	return previous, kind
}

func diff(previous, next models.PlayerState) ChangeKind {
	statusChanged := previous.Status != next.Status
	gameChanged := previous.Game != next.Game || (!previous.GameKnown && next.GameKnown)

	switch {
	case statusChanged && gameChanged:
		return Both
	case statusChanged:
		return StatusChanged
	case gameChanged:
		return GameChanged
	default:
		return NoChange
	}
}
