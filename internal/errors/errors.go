// Package errors provides sentinel errors and error types for the chess engine.
// It defines the engine's failure conditions and structured error types that
// preserve context while allowing error inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPieceAtSquare indicates a move whose source square is empty.
	// This is a caller-contract violation: only generator-produced moves
	// should ever reach the executor.
	ErrNoPieceAtSquare = errors.New("no piece at source square")

	// ErrPieceMissing indicates a board cell referencing a piece id that is
	// absent from the piece registry. This signals state corruption and is
	// never recoverable.
	ErrPieceMissing = errors.New("piece id missing from registry")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed square name or off-board
	// coordinates.
	ErrInvalidSquare = errors.New("invalid square")
)

// MoveError wraps errors with move context: the squares involved and an
// optional detail string. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square in algebraic form (e.g. "e2")
	To     string // Destination square in algebraic form
	Detail string // Additional context (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %s-%s", e.From, e.To)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
