// Package common defines shared constants and sentinel errors used across
// the server, the screen client and the bot. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential errors.
	ErrInvalidDomain  = errors.New("email is not an institutional address")
	ErrDuplicateUser  = errors.New("user already registered")
	ErrBadCredential  = errors.New("bad credential")
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrInternal       = errors.New("internal error")
	ErrNotConfigured  = errors.New("not configured")

	// Generation errors.
	ErrNoTopics         = errors.New("no topics selected")
	ErrEmptyInput       = errors.New("empty input")
	ErrInputTooLong     = errors.New("input too long")
	ErrGenerationFailed = errors.New("generation failed")

	// Navigation errors.
	ErrNoTransition = errors.New("no such transition")
)
