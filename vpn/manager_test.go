package vpn

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yllada/wirewarden/common"
)

// fakeProbe replays a scripted sequence of snapshots; the last one
// repeats once the script runs out.
type fakeProbe struct {
	sets  []ActiveSet
	calls int
}

func (f *fakeProbe) Active(context.Context) ActiveSet {
	i := f.calls
	f.calls++
	if i >= len(f.sets) {
		i = len(f.sets) - 1
	}
	if i < 0 {
		return ActiveSet{}
	}
	return f.sets[i]
}

type fakeRecorder struct {
	results []TransitionResult
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, res TransitionResult) error {
	f.results = append(f.results, res)
	return f.err
}

func newTestManager(t *testing.T, runner Runner, probe Probe, confs ...string) *Manager {
	t.Helper()
	dir := t.TempDir()
	for _, c := range confs {
		writeConf(t, dir, c)
	}
	m := &Manager{dir: dir, runner: runner, probe: probe}
	if _, err := m.List(); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestUpFromEmptySucceeds(t *testing.T) {
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{}, {"home": {}}}}
	m := newTestManager(t, runner, probe, "home.conf")

	res := m.Up(context.Background(), "home")

	if !res.OK {
		t.Fatalf("Up(home) failed: %s", res.Message)
	}
	if res.Err != nil {
		t.Errorf("Err = %v, want nil", res.Err)
	}
	if !res.Active.Has("home") || len(res.Active) != 1 {
		t.Errorf("post-state = %v, want {home}", res.Active.Sorted())
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected one command, got %d", len(runner.calls))
	}
	argv := runner.calls[0]
	if argv[0] != "wg-quick" || argv[1] != "up" {
		t.Errorf("argv = %v, want wg-quick up", argv)
	}
	if runner.dirs[0] != m.Dir() {
		t.Errorf("working dir = %q, want config dir %q", runner.dirs[0], m.Dir())
	}
	if res.ID == "" {
		t.Error("result should carry a correlation id")
	}
	if res.Direction != DirectionUp {
		t.Errorf("Direction = %v, want up", res.Direction)
	}
}

func TestUpConflictNamesActiveInterface(t *testing.T) {
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{"home": {}}}}
	m := newTestManager(t, runner, probe, "home.conf", "office.conf")

	res := m.Up(context.Background(), "office")

	if res.OK {
		t.Fatal("Up(office) should be rejected while home is active")
	}
	if !errors.Is(res.Err, common.ErrConflict) {
		t.Errorf("Err = %v, want ErrConflict", res.Err)
	}
	if want := "home"; res.Message == "" || !strings.Contains(res.Message, want) {
		t.Errorf("message %q should name the active interface %q", res.Message, want)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run on conflict, got %v", runner.calls)
	}
}

func TestUpIdempotentWhenAlreadyActive(t *testing.T) {
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{"home": {}}}}
	m := newTestManager(t, runner, probe, "home.conf")

	res := m.Up(context.Background(), "home")

	if !res.OK {
		t.Fatalf("Up of active interface should be a no-op success: %s", res.Message)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run, got %v", runner.calls)
	}
	if !res.Active.Has("home") {
		t.Errorf("post-state = %v, want {home}", res.Active.Sorted())
	}
}

func TestDownIdempotentWhenInactive(t *testing.T) {
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{}}}
	m := newTestManager(t, runner, probe, "home.conf")

	res := m.Down(context.Background(), "home")

	if !res.OK {
		t.Fatalf("Down of inactive interface should be a no-op success: %s", res.Message)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run, got %v", runner.calls)
	}
}

func TestDownExecutesWhenActive(t *testing.T) {
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{"home": {}}, {}}}
	m := newTestManager(t, runner, probe, "home.conf")

	res := m.Down(context.Background(), "home")

	if !res.OK {
		t.Fatalf("Down(home) failed: %s", res.Message)
	}
	if len(runner.calls) != 1 || runner.calls[0][1] != "down" {
		t.Errorf("calls = %v, want one wg-quick down", runner.calls)
	}
	if len(res.Active) != 0 {
		t.Errorf("post-state = %v, want empty", res.Active.Sorted())
	}
}

func TestUpConfigMissing(t *testing.T) {
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{}}}
	m := newTestManager(t, runner, probe)

	res := m.Up(context.Background(), "ghost")

	if res.OK {
		t.Fatal("Up(ghost) should fail without a config file")
	}
	if !errors.Is(res.Err, common.ErrConfigMissing) {
		t.Errorf("Err = %v, want ErrConfigMissing", res.Err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run, got %v", runner.calls)
	}
}

func TestGateBlocksAllTransitions(t *testing.T) {
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{}}}
	m := newTestManager(t, runner, probe, "home.conf", "office vpn.conf")

	res := m.Up(context.Background(), "home")

	if res.OK {
		t.Fatal("transitions must be refused while invalid config names exist")
	}
	if !errors.Is(res.Err, common.ErrInvalidName) {
		t.Errorf("Err = %v, want ErrInvalidName", res.Err)
	}
	if !strings.Contains(res.Message, "office vpn.conf") {
		t.Errorf("message %q should name the offending file", res.Message)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run, got %v", runner.calls)
	}
}

func TestInvalidTargetName(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestManager(t, runner, &fakeProbe{}, "home.conf")

	res := m.Up(context.Background(), "../etc/passwd")

	if res.OK || !errors.Is(res.Err, common.ErrInvalidName) {
		t.Errorf("Err = %v, want ErrInvalidName", res.Err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command should run, got %v", runner.calls)
	}
}

func TestCommandFailureDiagnostic(t *testing.T) {
	tests := []struct {
		name    string
		stdout  string
		stderr  string
		wantMsg string
	}{
		{"stderr wins", "out text", "resolvconf: command not found", "resolvconf: command not found"},
		{"stdout fallback", "address already in use", "", "address already in use"},
		{"generic fallback", "", "", "wg-quick failed"},
		{"whitespace trimmed", "", "  boom  \n", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{exitCode: 1, stdout: tt.stdout, stderr: tt.stderr}
			probe := &fakeProbe{sets: []ActiveSet{{}}}
			m := newTestManager(t, runner, probe, "home.conf")

			res := m.Up(context.Background(), "home")

			if res.OK {
				t.Fatal("non-zero exit should fail the transition")
			}
			if !errors.Is(res.Err, common.ErrCommandFailed) {
				t.Errorf("Err = %v, want ErrCommandFailed", res.Err)
			}
			if res.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", res.Message, tt.wantMsg)
			}
		})
	}
}

func TestLaunchFailureIsDistinct(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exec: \"wg-quick\": executable file not found in $PATH")}
	probe := &fakeProbe{sets: []ActiveSet{{}}}
	m := newTestManager(t, runner, probe, "home.conf")

	res := m.Up(context.Background(), "home")

	if res.OK {
		t.Fatal("spawn failure should fail the transition")
	}
	if !errors.Is(res.Err, common.ErrExec) {
		t.Errorf("Err = %v, want ErrExec", res.Err)
	}
	if errors.Is(res.Err, common.ErrCommandFailed) {
		t.Error("launch failure must not classify as command failure")
	}
}

func TestResultCarriesRealPostState(t *testing.T) {
	// wg-quick reports success but the environment disagrees: the
	// result must carry what the re-probe saw, not the nominal outcome.
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{}, {}}}
	m := newTestManager(t, runner, probe, "home.conf")

	res := m.Up(context.Background(), "home")

	if !res.OK {
		t.Fatalf("Up(home) failed: %s", res.Message)
	}
	if len(res.Active) != 0 {
		t.Errorf("post-state = %v, want the re-probed empty set", res.Active.Sorted())
	}
	if probe.calls != 2 {
		t.Errorf("probe calls = %d, want admission + post-condition", probe.calls)
	}
}

func TestRecorderSeesEveryAttempt(t *testing.T) {
	recorder := &fakeRecorder{}
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{}, {"home": {}}, {"home": {}}}}
	m := newTestManager(t, runner, probe, "home.conf", "office.conf")
	m.SetRecorder(recorder)

	m.Up(context.Background(), "home")
	m.Up(context.Background(), "office") // conflict

	if len(recorder.results) != 2 {
		t.Fatalf("recorded %d attempts, want 2", len(recorder.results))
	}
	if !recorder.results[0].OK || recorder.results[1].OK {
		t.Error("recorder should see both the success and the rejection")
	}
	if recorder.results[0].ID == recorder.results[1].ID {
		t.Error("attempts should have distinct ids")
	}
}

func TestRecorderErrorDoesNotFailTransition(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("database is locked")}
	runner := &fakeRunner{}
	probe := &fakeProbe{sets: []ActiveSet{{}, {"home": {}}}}
	m := newTestManager(t, runner, probe, "home.conf")
	m.SetRecorder(recorder)

	if res := m.Up(context.Background(), "home"); !res.OK {
		t.Errorf("recording failure must not fail the transition: %s", res.Message)
	}
}

