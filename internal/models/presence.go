package models

// ActivityType mirrors the gateway activity kinds we care about
type ActivityType int

const (
	ActivityTypeGame      ActivityType = 0
	ActivityTypeStreaming ActivityType = 1
	ActivityTypeListening ActivityType = 2
	ActivityTypeWatching  ActivityType = 3
	ActivityTypeCustom    ActivityType = 4
	ActivityTypeCompeting ActivityType = 5
)

// Device identifies the client a per-device status was reported from
type Device string

const (
	DeviceNone    Device = ""
	DeviceMobile  Device = "mobile"
	DeviceWeb     Device = "web"
	DeviceDesktop Device = "desktop"
)

// ClientStatus holds per-device statuses; empty means not connected on that device
type ClientStatus struct {
	Mobile  PlayerStatus
	Web     PlayerStatus
	Desktop PlayerStatus
}

// Activity is a single activity descriptor from a presence update
type Activity struct {
	Name      string
	Type      ActivityType
	Details   string
	State     string
	LargeText string
	SmallText string
}

// Presence is a presence update pushed by the gateway
type Presence struct {
	// GuildID is the guild the update was delivered for
	GuildID string

	// UserID is the subject of the update
	UserID string

	// Status is the top-level status
	Status PlayerStatus

	// ClientStatus is nil when the gateway did not send per-device statuses
	ClientStatus *ClientStatus

	Activities []Activity
}
