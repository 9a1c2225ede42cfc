// Package client contains the client-side transport for lorekeeper.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): one HTTP GET
//     per call, the body decoded into a generic JSON value.
//  2. A concrete net/http implementation (see HTTPClient) with a fixed
//     request timeout and no retries.
//
// # Error Handling
//
// Failures are exposed as sentinel errors that callers can match with
// errors.Is: ErrTimeout, ErrConnection, ErrDecode. Non-success HTTP statuses
// are returned as *StatusError and matched with errors.As.
//
// Concurrency & Contexts
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
