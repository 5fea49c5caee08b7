// Package session provides the session-persistence capability: an opaque
// session identifier mapped to the identity snapshot taken at login.
// Presence of a snapshot means authenticated; absence means anonymous.
// Entries expire after a fixed time-to-live from creation.
package session

import (
	"context"
	"errors"

	"game_catalog/internal/model"
)

// ErrNotFound is returned by Get when no live entry exists for the
// identifier, whether it never existed, was deleted, or expired.
var ErrNotFound = errors.New("session not found")

// Store is the session-persistence capability. It is injected into the
// gates and handlers so the in-memory backend can be swapped for a
// distributed one without touching either.
type Store interface {
	Get(ctx context.Context, sid string) (*model.SessionUser, error)
	Set(ctx context.Context, sid string, user *model.SessionUser) error
	Delete(ctx context.Context, sid string) error
}
