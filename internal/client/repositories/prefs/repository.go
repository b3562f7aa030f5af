// Package prefs stores small client-side settings (such as the last login
// name) in the local SQLite file.
package prefs

import "context"

// Well-known keys.
const (
	KeyLastLogin = "last_login"
)

type Repository interface {
	// Get returns common.ErrNotFound when key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
