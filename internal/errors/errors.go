// Package errors provides sentinel errors and error types for the rules engine.
// Rule violations are never errors: an illegal move is a normal "rejected"
// outcome. The errors here describe malformed input that the engine refuses to
// interpret, and they support inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for malformed input.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCoordinate indicates a square name or index outside the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrMalformedPosition indicates a position string that cannot be decoded.
	ErrMalformedPosition = errors.New("malformed position")

	// ErrNoHistory indicates an undo or redo with nothing to replay.
	ErrNoHistory = errors.New("no history")

	// ErrSquareOccupied indicates a placement onto a square that already holds a piece.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrInvalidPiece indicates an unknown piece symbol or kind.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps a decoding failure with the position field that caused
// it. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type PositionError struct {
	Err   error  // The underlying error
	Field string // Name of the offending field ("placement", "side to move", ...)
	Value string // The offending text, if any
	Rank  int    // 1-based rank for placement errors (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Rank > 0 {
		parts = append(parts, fmt.Sprintf("rank %d", e.Rank))
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ", "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return "position error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Malformed builds a PositionError for the given field wrapping ErrMalformedPosition.
func Malformed(field, value string) *PositionError {
	return &PositionError{Err: ErrMalformedPosition, Field: field, Value: value}
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
