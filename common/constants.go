// Package common provides shared constants, types, and utilities
// used across the WireWarden application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.yllada.wirewarden"
	// AppName is the display name of the application.
	AppName = "WireWarden"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "wirewarden"
)

// File names used by the application.
const (
	ConfigFileName  = "config.yaml"
	LogFileName     = "wirewarden.log"
	HistoryFileName = "history.db"
)

// Default intervals and limits.
const (
	// DefaultPollInterval is how often the terminal UI re-probes
	// the active interface set.
	DefaultPollInterval = 3 * time.Second
	// MinPollInterval is the lower bound enforced on configured
	// polling intervals.
	MinPollInterval = 250 * time.Millisecond
	// DefaultHistoryLimit is the number of transition records kept
	// in the history journal.
	DefaultHistoryLimit = 200
)
