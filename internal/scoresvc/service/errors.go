package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced game, player or update that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoScoreUpdates is returned by undo when the game's ledger is
	// empty.
	ErrNoScoreUpdates = errors.New("no score updates for game")
)

// ValidationError is a client-input error. Nothing has been written to
// the store when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
