package notifier

// NotifierError is a custom error type for notification errors
type NotifierError string

// Error implements the error interface
func (e NotifierError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrDeliveryFailed NotifierError = "notification delivery failed"
	ErrEmptyText      NotifierError = "notification text cannot be empty"
	ErrNilConfig      NotifierError = "config cannot be nil"
	ErrEmptyChannel   NotifierError = "channel ID cannot be empty"
	ErrNilSender      NotifierError = "message sender cannot be nil"
	ErrNilRepository  NotifierError = "notification repository cannot be nil"
	ErrNilClock       NotifierError = "clock cannot be nil"
	ErrNilUUID        NotifierError = "UUID generator cannot be nil"
	ErrNilMetrics     NotifierError = "metrics cannot be nil"
)
