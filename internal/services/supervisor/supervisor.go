// Package supervisor owns the poller goroutines and guarantees at most one live
// instance of each across gateway reconnects.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/charmbracelet/log"
)

type handle struct {
	cancel     context.CancelFunc
	done       chan struct{}
	generation uint64
}

// Supervisor restarts its tasks on demand. Handles are guarded by the
// supervisor's own mutex, separate from any player state.
type Supervisor struct {
	tasks   []Task
	metrics metrics.Metrics

	mu         sync.Mutex
	state      State
	generation uint64
	handles    map[string]*handle
}

// New creates a new supervisor in the idle state
func New(cfg *Config) (*Supervisor, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Metrics == nil {
		return nil, ErrNilMetrics
	}

	seen := make(map[string]bool, len(cfg.Tasks))
	for _, t := range cfg.Tasks {
		if t == nil {
			return nil, ErrNilTask
		}
		if seen[t.Name()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTask, t.Name())
		}
		seen[t.Name()] = true
	}

	return &Supervisor{
		tasks:   cfg.Tasks,
		metrics: cfg.Metrics,
		state:   StateIdle,
		handles: make(map[string]*handle),
	}, nil
}

// Restart cancels any running task instances without waiting for them and
// spawns fresh ones under ctx. Tasks that fail to start are logged and skipped;
// the supervisor still reaches Running with whatever did start.
func (s *Supervisor) Restart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateStopped {
		return ErrStopped
	}

	if s.state == StateIdle {
		s.state = StateStarting
	} else {
		s.state = StateRestarting
	}
	s.generation++
	log.Info("Starting watchers", "generation", s.generation, "state", s.state)

	for name, h := range s.handles {
		h.cancel()
		delete(s.handles, name)
	}

	var errs []error
	for _, t := range s.tasks {
		h, err := s.spawn(ctx, t)
		if err != nil {
			log.Error("Failed to start watcher", "task", t.Name(), "err", err)
			errs = append(errs, err)
			continue
		}
		s.handles[t.Name()] = h
	}

	s.state = StateRunning
	s.metrics.IncWatcherRestarts()

	return errors.Join(errs...)
}

// spawn starts one task instance; callers hold s.mu
func (s *Supervisor) spawn(parent context.Context, t Task) (*handle, error) {
	if err := parent.Err(); err != nil {
		return nil, fmt.Errorf("cannot start %s: %w", t.Name(), err)
	}

	ctx, cancel := context.WithCancel(parent)
	h := &handle{
		cancel:     cancel,
		done:       make(chan struct{}),
		generation: s.generation,
	}

	go func() {
		defer close(h.done)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				log.Error("Watcher panicked", "task", t.Name(), "panic", r, "stack", string(debug.Stack()))
			}
		}()

		log.Debug("Watcher started", "task", t.Name(), "generation", h.generation)
		err := t.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Watcher exited", "task", t.Name(), "generation", h.generation, "err", err)
			return
		}
		log.Debug("Watcher stopped", "task", t.Name(), "generation", h.generation)
	}()

	return h, nil
}

// Stop cancels every task and waits for them to exit or for ctx to expire.
// A stopped supervisor cannot be restarted.
func (s *Supervisor) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateStopped
	pending := make([]*handle, 0, len(s.handles))
	for name, h := range s.handles {
		h.cancel()
		pending = append(pending, h)
		delete(s.handles, name)
	}
	s.mu.Unlock()

	for _, h := range pending {
		select {
		case <-h.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// State returns the current lifecycle state
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Generation returns how many times Restart has run
func (s *Supervisor) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation
}

// Active returns the names of tasks whose current instance is still running
func (s *Supervisor) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for _, t := range s.tasks {
		h, ok := s.handles[t.Name()]
		if !ok {
			continue
		}
		select {
		case <-h.done:
		default:
			names = append(names, t.Name())
		}
	}

	return names
}
