// Package ui provides the interactive terminal user interface for
// WireWarden.
//
// The UI is a thin presentation layer over the vpn.Manager boundary:
//
//   - One row per valid interface, cursor-selectable, with a live
//     active/inactive tag
//   - Up/down requests for the selection, serialized while a
//     transition is in flight
//   - A periodic poll (poll_interval_ms) that re-scans the config
//     directory and re-probes the active set
//   - A gate screen listing invalid config file names verbatim, with
//     every transition key inert until a rescan clears them
//   - Best-effort desktop notifications for completed transitions over
//     D-Bus
//
// The UI never caches a decision-relevant copy of the environment: the
// Manager re-probes live state on every action, and the model only
// mirrors snapshots for display.
package ui
