package notification

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemory(2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.SaveNotification(ctx, &SaveNotificationInput{
			Notification: &models.Notification{
				ID:   fmt.Sprintf("n-%d", i),
				Text: "hello",
			},
		}))
	}

	output, err := repo.GetRecentNotifications(ctx, &GetRecentNotificationsInput{})
	require.NoError(t, err)
	require.Len(t, output.Notifications, 2)
	assert.Equal(t, "n-2", output.Notifications[0].ID)
	assert.Equal(t, "n-1", output.Notifications[1].ID)

	// Returned records are copies
	output.Notifications[0].Text = "mutated"
	again, err := repo.GetRecentNotifications(ctx, &GetRecentNotificationsInput{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, "hello", again.Notifications[0].Text)

	assert.ErrorIs(t, repo.SaveNotification(ctx, &SaveNotificationInput{}), ErrNilInput)
}
