package notification

import (
	"errors"

	"github.com/KirkDiggler/spyglass/internal/models"
)

// DefaultMaxEntries bounds how many notifications the log keeps
const DefaultMaxEntries = 200

var (
	// ErrNilInput is returned when an input or its notification is nil
	ErrNilInput = errors.New("input and notification cannot be nil")

	// ErrEmptyID is returned when a notification has no ID
	ErrEmptyID = errors.New("notification ID cannot be empty")
)

// SaveNotificationInput contains parameters for saving a notification
type SaveNotificationInput struct {
	Notification *models.Notification
}

// GetRecentNotificationsInput contains parameters for listing notifications
type GetRecentNotificationsInput struct {
	// Limit caps the number returned; zero means everything kept
	Limit int
}

// GetRecentNotificationsOutput contains the listed notifications, newest first
type GetRecentNotificationsOutput struct {
	Notifications []*models.Notification
}

func validateSave(input *SaveNotificationInput) error {
	if input == nil || input.Notification == nil {
		return ErrNilInput
	}
	if input.Notification.ID == "" {
		return ErrEmptyID
	}
	return nil
}
