// Package session keeps per-visitor state behind a signed cookie.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when the field has no value.
var ErrNotFound = errors.New("session value not found")

// Store persists string fields per session id.
type Store interface {
	Get(ctx context.Context, id, field string) (string, error)
	// SetNX writes value only when the field is unset and reports whether
	// it did.
	SetNX(ctx context.Context, id, field, value string) (bool, error)
}
