package models

import "errors"

// Sentinel errors: package-level values checked with errors.Is rather
// than typed panics.
var (
	ErrInvocationContract = errors.New("models: post_action request requires a user-initiated trigger and non-empty input or artifact")
	ErrNotFound           = errors.New("models: not found")
	ErrConcurrentModify   = errors.New("models: concurrent modification")
)
