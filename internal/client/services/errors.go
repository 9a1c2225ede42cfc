package services

import "errors"

var (
	// ErrFormat means the response decoded fine but its shape does not match
	// what the endpoint is expected to return.
	ErrFormat = errors.New("unexpected response format")

	// ErrNotFound means the item fetch came back 404.
	ErrNotFound = errors.New("not found")
)
