// Package common provides shared constants, types, and utilities
// used across the WireWarden application.
package common

// Notifier defines the interface for sending desktop notifications about
// connection events. Implementations must be best-effort: delivery failures
// are logged, never surfaced to the caller's control flow.
type Notifier interface {
	// NotifyConnected announces that an interface came up.
	NotifyConnected(name string)
	// NotifyDisconnected announces that an interface went down.
	NotifyDisconnected(name string)
	// NotifyError announces a failed transition with its diagnostic.
	NotifyError(name, diagnostic string)
}
