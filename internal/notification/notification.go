package notification

import "context"

// Event is a realtime notification addressed to one employee's channel.
type Event struct {
	EmployeeID string
	Kind       string
	Payload    any
}

// Port is the fan-out capability consumed by the leave workflow and the
// attendance sweepers. Both methods are best-effort: callers log returned
// errors and carry on, a failed notification never rolls back the state
// change that produced it.
//
type Port interface {
	Publish(ctx context.Context, ev Event) error
	SendEmail(ctx context.Context, to []string, subject, htmlBody string) error
}
