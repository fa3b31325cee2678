package domain

import "errors"

// ErrSessionNotFound is returned when a session key cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionCompleted is returned when a turn is submitted to a session that
// already reached its terminal stage.
var ErrSessionCompleted = errors.New("session already completed")

// ErrUnknownModule is returned when a session references a module that is not registered.
var ErrUnknownModule = errors.New("unknown training module")
