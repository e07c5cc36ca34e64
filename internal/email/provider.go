package email

// Provider sends outbound mail. Implementations must be safe for
// concurrent use: delivery runs on the event dispatcher goroutine.
type Provider interface {
	Send(email *Email) error
	Validate() error
	Close() error
}
