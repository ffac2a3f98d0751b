package supervisor

import (
	"context"

	"github.com/KirkDiggler/spyglass/internal/metrics"
)

// Task is a long-running loop the supervisor owns
type Task interface {
	// Name identifies the task in logs; names must be unique
	Name() string

	// Run blocks until ctx is cancelled or the task gives up
	Run(ctx context.Context) error
}

// State is the supervisor lifecycle state
type State string

const (
	StateIdle       State = "idle"
	StateStarting   State = "starting"
	StateRunning    State = "running"
	StateRestarting State = "restarting"
	StateStopped    State = "stopped"
)

// SupervisorError is a custom error type for supervisor errors
type SupervisorError string

// Error implements the error interface
func (e SupervisorError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     SupervisorError = "config cannot be nil"
	ErrNilTask       SupervisorError = "task cannot be nil"
	ErrDuplicateTask SupervisorError = "task names must be unique"
	ErrNilMetrics    SupervisorError = "metrics cannot be nil"
	ErrStopped       SupervisorError = "supervisor is stopped"
)

// Config holds configuration for the supervisor
type Config struct {
	// Tasks are (re)started together on every Restart
	Tasks []Task

	Metrics metrics.Metrics
}
