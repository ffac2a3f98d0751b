package notification

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/spyglass/internal/repositories/notification Repository

import (
	"context"
)

// Repository defines the interface for the log of delivered notifications
type Repository interface {
	// SaveNotification appends a delivered notification to the log
	SaveNotification(ctx context.Context, input *SaveNotificationInput) error

	// GetRecentNotifications returns the newest notifications first
	GetRecentNotifications(ctx context.Context, input *GetRecentNotificationsInput) (*GetRecentNotificationsOutput, error)
}
