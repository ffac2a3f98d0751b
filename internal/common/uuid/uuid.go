package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/spyglass/internal/common/uuid UUID

// UUID generates notification ids
type UUID interface {
	NewUUID() string
}

// DefaultUUID issues time-ordered (version 7) ids, so notification ids sort
// in delivery order
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new id, falling back to a random one if the
// time-ordered generator fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
