package service

// Notifier publishes an already-committed business event to a hospital's
// live sessions. Implementations must never block on delivery or surface
// delivery failures to the caller. Satisfied by *notification.Publisher.
type Notifier interface {
	Publish(hospitalID uint, event interface{})
}
