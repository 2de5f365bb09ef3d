// Package common provides shared constants, types, and utilities
// used across the WireWarden application.
package common

import "errors"

// Sentinel errors for interface lifecycle operations.
// These can be checked with errors.Is() for proper error handling.
// All of them are recoverable: the application keeps running and stays
// interactive after any single failure, and nothing retries automatically.
var (
	// Discovery errors.
	ErrInvalidName = errors.New("invalid interface name")
	ErrScan        = errors.New("cannot read config directory")

	// Transition admission errors.
	ErrConflict      = errors.New("another interface is active")
	ErrConfigMissing = errors.New("configuration file not found")

	// Command execution errors. ErrExec means the tool could not be
	// launched at all; ErrCommandFailed means it ran and exited non-zero.
	ErrExec          = errors.New("failed to launch command")
	ErrCommandFailed = errors.New("command exited with an error")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
