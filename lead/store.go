package lead

import (
	"context"
	"fmt"
)

// Store accepts lead inserts. Implementations make a single attempt:
// no retry, no backoff.
type Store interface {
	Insert(ctx context.Context, l Lead) error
}

// Pinger is implemented by stores that can report their connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreError is returned when a store rejects an insert or cannot be reached.
type StoreError struct {
	Backend string
	// Status is the HTTP status for HTTP backends, zero otherwise.
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	msg := e.Backend + ": " + e.Message
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Code != "" {
		msg += " [" + e.Code + "]"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
