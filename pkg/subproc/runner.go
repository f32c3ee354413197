package subproc

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner abstracts command execution for testability.
// A nil error means the command ran and exited 0. A non-nil error covers
// both a non-zero exit and a failure to launch at all; callers that only
// care about pass/fail treat the two identically.
type Runner interface {
	Run(c Command) error
}

// RealRunner implements Runner using actual OS commands.
// The child's stdout and stderr pass through to the parent: the harness
// never suppresses or parses collaborator output.
type RealRunner struct {
	// ExtraPath directories are searched for check programs before the
	// regular PATH, and prepended to the child's own PATH, so the
	// executables under test are discoverable without mutating the
	// harness's environment.
	ExtraPath []string
}

// Run executes the command and waits for it to complete.
func (r *RealRunner) Run(c Command) error {
	program, err := r.lookPath(c.Program)
	if err != nil {
		// Unresolvable program: the caller counts this as a failed
		// check, same as a non-zero exit.
		return err
	}
	cmd := exec.Command(program, c.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Env = r.environ()
	return cmd.Run()
}

// lookPath resolves the program to execute. ExtraPath directories are
// searched first, so the executables under test win over same-named
// programs already on PATH. exec.Command resolves against the parent's
// PATH at construction time; setting cmd.Env never affects that lookup,
// which is why resolution happens here.
func (r *RealRunner) lookPath(program string) (string, error) {
	if strings.ContainsRune(program, os.PathSeparator) {
		return program, nil
	}
	for _, dir := range r.ExtraPath {
		candidate := filepath.Join(dir, program)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return exec.LookPath(program)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode()&0o111 != 0
}

// environ returns the current environment with ExtraPath prepended to PATH.
func (r *RealRunner) environ() []string {
	if len(r.ExtraPath) == 0 {
		return os.Environ()
	}

	prefix := strings.Join(r.ExtraPath, string(os.PathListSeparator))
	env := os.Environ()
	for i, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			env[i] = "PATH=" + prefix + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
			return env
		}
	}
	return append(env, "PATH="+prefix)
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(c Command) error
	Calls   []Command
}

// Run records the call and delegates to the mock function.
func (m *MockRunner) Run(c Command) error {
	m.Calls = append(m.Calls, c)
	if m.RunFunc == nil {
		return nil
	}
	return m.RunFunc(c)
}
