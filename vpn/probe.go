package vpn

import (
	"context"
	"sort"
	"strings"
)

// ActiveSet is a snapshot of the interface names the environment
// reports as up. It is recomputed on every probe and never diffed
// incrementally.
type ActiveSet map[string]struct{}

// Has reports whether name is in the set.
func (s ActiveSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in lexicographic order.
func (s ActiveSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both sets hold the same names.
func (s ActiveSet) Equal(other ActiveSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}
	return true
}

// String renders the set for display: comma-joined sorted names, or
// "none" when empty.
func (s ActiveSet) String() string {
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s.Sorted(), ", ")
}

// Probe queries the environment for the currently active interfaces.
// Probing is best-effort and never fails: when the answer cannot be
// obtained the set is simply empty.
type Probe interface {
	Active(ctx context.Context) ActiveSet
}

// WgProbe asks the wg tool which interfaces are up. A missing binary
// or a non-zero exit both mean "nothing is active" — the system cannot
// distinguish "no tool" from "tool present, nothing up", and failing
// hard here would make the whole application unusable.
type WgProbe struct {
	runner Runner
}

// NewWgProbe returns a probe running wg through runner. The probe only
// reads state, so it wants an unprivileged runner.
func NewWgProbe(runner Runner) *WgProbe {
	return &WgProbe{runner: runner}
}

// Active runs `wg show interfaces` and parses its whitespace-separated
// output. No caching: every call re-invokes the tool.
func (p *WgProbe) Active(ctx context.Context) ActiveSet {
	exit, stdout, _, err := p.runner.Run(ctx, "", []string{"wg", "show", "interfaces"})
	if err != nil || exit != 0 {
		return ActiveSet{}
	}

	set := make(ActiveSet)
	for _, name := range strings.Fields(stdout) {
		set[name] = struct{}{}
	}
	return set
}
