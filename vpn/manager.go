// Package vpn provides WireGuard interface lifecycle management.
// This file contains the Manager type which mediates all transitions
// between the configuration directory and the wg-quick tool.
package vpn

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yllada/wirewarden/common"
)

// Common errors - re-exported from common package for convenience.
var (
	ErrInvalidName   = common.ErrInvalidName
	ErrScan          = common.ErrScan
	ErrConflict      = common.ErrConflict
	ErrConfigMissing = common.ErrConfigMissing
	ErrExec          = common.ErrExec
	ErrCommandFailed = common.ErrCommandFailed
)

// Direction is the requested side of a transition.
type Direction int

const (
	// DirectionUp brings an interface up.
	DirectionUp Direction = iota
	// DirectionDown brings an interface down.
	DirectionDown
)

// String returns the wg-quick verb for the direction.
func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// TransitionResult is the synchronous outcome of one Up or Down
// request. Whatever happened, Active holds a fresh post-action probe of
// the environment, which may contradict the requested direction when
// something changed out-of-band.
type TransitionResult struct {
	// ID correlates this attempt across logs and the journal.
	ID string
	// Name is the target interface.
	Name string
	// Direction is the requested side.
	Direction Direction
	// OK reports whether the requested state was reached (or already held).
	OK bool
	// Message is the human-readable diagnostic, suitable for display as is.
	Message string
	// Err classifies the failure; nil on success. errors.Is matches the
	// common sentinels.
	Err error
	// Active is the re-probed interface set after the attempt.
	Active ActiveSet
	// Duration is how long the attempt took, command included.
	Duration time.Duration
}

// TransitionRecorder receives every completed transition attempt for
// auditing. Recording failures are logged, never surfaced to the
// requesting caller.
type TransitionRecorder interface {
	Record(ctx context.Context, res TransitionResult) error
}

// Manager is the stateful core of the application. It enforces the
// single-active-interface policy, refuses to act while the last scan
// reported invalid config names, and mediates every privileged
// wg-quick invocation.
//
// Beyond the most recent scan snapshot the Manager holds no state of
// its own: the live environment is authoritative and is re-probed
// immediately before and after every action.
type Manager struct {
	dir      string
	runner   Runner
	probe    Probe
	recorder TransitionRecorder

	mu        sync.Mutex
	inventory *Inventory
}

// NewManager creates a Manager for the given configuration directory.
// The escalation strategy for transitions is selected once, here.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:    dir,
		runner: NewPrivilegedRunner(),
		probe:  NewWgProbe(NewRunner()),
	}
}

// SetRecorder attaches a transition recorder. A nil recorder disables
// auditing.
func (m *Manager) SetRecorder(r TransitionRecorder) {
	m.recorder = r
}

// Dir returns the configuration directory the Manager operates on.
func (m *Manager) Dir() string {
	return m.dir
}

// List re-scans the configuration directory and returns the fresh
// inventory. The snapshot also arms the transition gate: while Invalid
// is non-empty every Up and Down request is refused.
func (m *Manager) List() (*Inventory, error) {
	inv, err := Scan(m.dir)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.inventory = inv
	m.mu.Unlock()
	return inv, nil
}

// Active probes the environment for the currently active interfaces.
func (m *Manager) Active(ctx context.Context) ActiveSet {
	return m.probe.Active(ctx)
}

// Up requests that the named interface be brought up.
func (m *Manager) Up(ctx context.Context, name string) TransitionResult {
	return m.transition(ctx, name, DirectionUp)
}

// Down requests that the named interface be brought down.
func (m *Manager) Down(ctx context.Context, name string) TransitionResult {
	return m.transition(ctx, name, DirectionDown)
}

func (m *Manager) transition(ctx context.Context, name string, dir Direction) TransitionResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	res := TransitionResult{
		ID:        uuid.NewString(),
		Name:      name,
		Direction: dir,
	}

	fail := func(sentinel error, message string) TransitionResult {
		res.Err = common.WrapError(sentinel, message)
		res.Message = message
		return m.finish(ctx, res, start)
	}

	if !ValidInterfaceName(name) {
		return fail(common.ErrInvalidName, fmt.Sprintf("%q is not a valid interface name", name))
	}

	// All-or-nothing gate: a single badly named config file blocks every
	// transition until it is renamed or removed.
	inv := m.inventory
	if inv == nil {
		var err error
		inv, err = Scan(m.dir)
		if err != nil {
			return fail(common.ErrScan, err.Error())
		}
		m.inventory = inv
	}
	if inv.Gated() {
		return fail(common.ErrInvalidName,
			"invalid config file names present: "+strings.Join(inv.Invalid, ", "))
	}

	// Admission: always against a live probe, never cached knowledge.
	active := m.probe.Active(ctx)

	switch dir {
	case DirectionUp:
		if len(active) > 0 && !active.Has(name) {
			return fail(common.ErrConflict, fmt.Sprintf(
				"another interface is active: %s; bring it down before bringing up %s",
				strings.Join(active.Sorted(), ", "), name))
		}
		if active.Has(name) {
			res.OK = true
			res.Message = name + " is already up"
			res.Active = active
			return m.record(ctx, withDuration(res, start))
		}
	case DirectionDown:
		if !active.Has(name) {
			res.OK = true
			res.Message = name + " is already down"
			res.Active = active
			return m.record(ctx, withDuration(res, start))
		}
	}

	confPath := filepath.Join(m.dir, name+ConfigExtension)
	if !common.FileExists(confPath) {
		return fail(common.ErrConfigMissing, "config not found: "+confPath)
	}

	common.LogInfo("bringing %s %s (%s)", dir, name, res.ID)
	exit, stdout, stderr, err := m.runner.Run(ctx, m.dir, []string{"wg-quick", dir.String(), confPath})

	switch {
	case err != nil:
		res.Err = common.WrapError(common.ErrExec, err.Error())
		res.Message = "failed to launch wg-quick: " + err.Error()
		common.LogError("wg-quick %s %s: %v", dir, name, err)
	case exit != 0:
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = strings.TrimSpace(stdout)
		}
		if msg == "" {
			msg = "wg-quick failed"
		}
		res.Err = common.WrapError(common.ErrCommandFailed, msg)
		res.Message = msg
		common.LogError("wg-quick %s %s exited %d: %s", dir, name, exit, msg)
	default:
		res.OK = true
		res.Message = fmt.Sprintf("%s is %s", name, dir)
		common.LogInfo("%s is %s", name, dir)
	}

	return m.finish(ctx, res, start)
}

// finish re-probes the environment and records the attempt. Success or
// failure, the true post-action state is what the caller gets.
func (m *Manager) finish(ctx context.Context, res TransitionResult, start time.Time) TransitionResult {
	res.Active = m.probe.Active(ctx)
	return m.record(ctx, withDuration(res, start))
}

func withDuration(res TransitionResult, start time.Time) TransitionResult {
	res.Duration = time.Since(start)
	return res
}

func (m *Manager) record(ctx context.Context, res TransitionResult) TransitionResult {
	if m.recorder != nil {
		if err := m.recorder.Record(ctx, res); err != nil {
			common.LogWarn("failed to record transition %s: %v", res.ID, err)
		}
	}
	return res
}
