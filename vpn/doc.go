// Package vpn provides WireGuard interface lifecycle management for
// WireWarden.
//
// This package implements the core of the application:
//
//   - Name validation: the character-set rule WireGuard imposes on
//     interface names
//   - Inventory: scanning a flat directory of .conf files and
//     partitioning them into usable and invalid entries
//   - Probing: best-effort discovery of the currently active
//     interfaces via `wg show interfaces`
//   - Transitions: bringing interfaces up and down through wg-quick,
//     with privilege escalation when needed
//
// # Architecture
//
// The package is organized around three main types:
//
//   - Manager: admits, executes, and reports interface transitions
//   - Runner: executes external commands, directly or wrapped with an
//     escalation helper chosen once at startup
//   - Probe: snapshots the active interface set, never failing
//
// # Transition Flow
//
// A typical bring-up:
//
//  1. A collaborator (terminal UI or CLI) calls Manager.Up()
//  2. Manager checks the invalid-name gate from the last scan
//  3. Manager probes live state and applies the single-connection rule
//  4. Manager verifies the backing config file still exists
//  5. wg-quick runs to completion with output captured
//  6. Manager re-probes and returns a TransitionResult
//
// # Single Connection Enforcement
//
// At most one interface is meant to be active at a time. The rule is
// enforced at admission only: the active set is read from the live
// environment and can hold more than one entry if changed out-of-band,
// which the Manager tolerates and reports rather than corrects.
//
// # Thread Safety
//
// Manager serializes transitions with an internal lock. Probing and
// scanning are safe to call concurrently.
package vpn
