// Package common provides shared constants, types, utilities, and interfaces
// used throughout the WireWarden application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like directory names, file names, and default intervals
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: Abstractions shared between the core and the presentation layers
//   - Logger: Structured logging with console and rotating file output
//   - Utils: Common utility functions for filesystem paths
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "github.com/yllada/wirewarden/common"
//
//	// Use constants
//	interval := common.DefaultPollInterval
//
//	// Use logger
//	common.LogInfo("bringing up %s", name)
//
//	// Check errors
//	if errors.Is(err, common.ErrConflict) {
//	    // Another interface is already active
//	}
//
// # Design Principles
//
// Error kinds mirror the failure modes of the interface lifecycle: every
// sentinel here is recoverable at the presentation boundary and none is
// fatal to the process. Logging goes to stderr so that table output and
// the terminal UI frame on stdout stay clean.
package common
