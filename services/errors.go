package services

import "errors"

var (
	// ErrUnauthenticated means the session token was absent or bound to no user.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrDuplicateEmail  = errors.New("user already exists")
	// ErrSessionInUse means the caller presented a token that already belongs to another user.
	ErrSessionInUse = errors.New("session already in use")
	// ErrMealNotFound covers both a missing meal and a meal owned by someone else.
	ErrMealNotFound = errors.New("meal not found")
	ErrUnknownOwner = errors.New("meal owner does not exist")
)
