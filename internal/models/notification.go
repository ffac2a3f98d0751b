package models

import (
	"time"
)

// NotificationSource identifies which watcher produced a notification
type NotificationSource string

const (
	NotificationSourcePresence NotificationSource = "presence"
	NotificationSourceSteam    NotificationSource = "steam"
	NotificationSourceMatch    NotificationSource = "match"
)

// Notification is a record of a message delivered to the output channel
type Notification struct {
	// ID is the unique identifier for this notification
	ID string `json:"id"`

	// Source is the watcher that produced it
	Source NotificationSource `json:"source"`

	// Text is the exact message content
	Text string `json:"text"`

	// SentAt is when the message was delivered
	SentAt time.Time `json:"sent_at"`
}
