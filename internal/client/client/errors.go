package client

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout    = errors.New("request timed out")
	ErrConnection = errors.New("connection failed")
	ErrDecode     = errors.New("invalid JSON in response")
)

// StatusError reports a non-2xx HTTP status. A 404 is still a StatusError
// here; the services layer decides whether it means "not found".
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}
