package contract

import "errors"

var (
	// ErrReactionNotFound is returned when a user has no active reaction on a target.
	ErrReactionNotFound = errors.New("reaction not found")
	// ErrUserNotFound is returned when no user matches a lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user whose username already exists.
	ErrUsernameTaken = errors.New("username already taken")
)
