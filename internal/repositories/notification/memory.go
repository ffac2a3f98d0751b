package notification

import (
	"context"
	"sync"

	"github.com/KirkDiggler/spyglass/internal/models"
)

// memoryRepository keeps the log in process memory when Redis is not configured
type memoryRepository struct {
	mu         sync.Mutex
	entries    []*models.Notification
	maxEntries int
}

// NewMemory creates an in-memory notification repository
func NewMemory(maxEntries int) *memoryRepository {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &memoryRepository{
		maxEntries: maxEntries,
	}
}

// SaveNotification prepends a copy of the notification
func (r *memoryRepository) SaveNotification(ctx context.Context, input *SaveNotificationInput) error {
	if err := validateSave(input); err != nil {
		return err
	}

	n := *input.Notification

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]*models.Notification{&n}, r.entries...)
	if len(r.entries) > r.maxEntries {
		r.entries = r.entries[:r.maxEntries]
	}

	return nil
}

// GetRecentNotifications returns copies of the newest notifications
func (r *memoryRepository) GetRecentNotifications(ctx context.Context, input *GetRecentNotificationsInput) (*GetRecentNotificationsOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.entries)
	if input != nil && input.Limit > 0 && input.Limit < count {
		count = input.Limit
	}

	notifications := make([]*models.Notification, 0, count)
	for _, entry := range r.entries[:count] {
		n := *entry
		notifications = append(notifications, &n)
	}

	return &GetRecentNotificationsOutput{
		Notifications: notifications,
	}, nil
}
