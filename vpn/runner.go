package vpn

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner executes an external command to completion and reports its
// outcome. A non-nil error means the command could not be launched at
// all; a non-zero exit code comes back with a nil error so callers can
// tell the two failure categories apart.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) (exitCode int, stdout, stderr string, err error)
}

// execRunner runs commands through os/exec, optionally prefixed with a
// privilege-escalation helper chosen once at construction.
type execRunner struct {
	prefix []string
}

// NewRunner returns a Runner that executes commands directly, with the
// caller's own privileges.
func NewRunner() Runner {
	return &execRunner{}
}

// NewPrivilegedRunner returns a Runner for commands that need root.
// If the process already runs as root, or no escalation helper is
// installed, commands execute directly; in the latter case the OS-level
// permission failure surfaces through the normal result path.
func NewPrivilegedRunner() Runner {
	r := &execRunner{}
	if os.Geteuid() != 0 {
		if pkexec, err := exec.LookPath("pkexec"); err == nil {
			r.prefix = []string{pkexec}
		}
	}
	return r
}

func (r *execRunner) Run(ctx context.Context, dir string, argv []string) (int, string, string, error) {
	full := append(append([]string{}, r.prefix...), argv...)

	cmd := exec.CommandContext(ctx, full[0], full[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), stdout.String(), stderr.String(), nil
		}
		return -1, stdout.String(), stderr.String(), err
	}
	return 0, stdout.String(), stderr.String(), nil
}

// CommandExists reports whether command is on PATH.
func CommandExists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
