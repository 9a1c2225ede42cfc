package client

import "context"

// Client is the transport contract: one GET per call, the body decoded as a
// generic JSON value. Implementations classify failures into the sentinel
// errors of this package so callers can branch with errors.Is / errors.As.
type Client interface {
	GetJSON(ctx context.Context, url string) (any, error)
	Close() error
}
