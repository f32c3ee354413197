package subproc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMockRunnerRecordsCalls(t *testing.T) {
	mock := &MockRunner{}

	if err := mock.Run(Command{Program: "true"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := mock.Run(Command{Program: "make", Args: []string{"all"}}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(mock.Calls) != 2 {
		t.Fatalf("Calls = %d, want 2", len(mock.Calls))
	}
	if mock.Calls[1].Program != "make" || mock.Calls[1].Args[0] != "all" {
		t.Errorf("second call = %v, want make all", mock.Calls[1])
	}
}

func TestMockRunnerDelegates(t *testing.T) {
	wantErr := errors.New("exit status 2")
	mock := &MockRunner{
		RunFunc: func(c Command) error {
			if c.Program == "false" {
				return wantErr
			}
			return nil
		},
	}

	if err := mock.Run(Command{Program: "true"}); err != nil {
		t.Errorf("Run(true) = %v, want nil", err)
	}
	if err := mock.Run(Command{Program: "false"}); !errors.Is(err, wantErr) {
		t.Errorf("Run(false) = %v, want %v", err, wantErr)
	}
}

func TestRealRunnerEnvironDefault(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")

	r := &RealRunner{}
	env := r.environ()

	if !containsEnv(env, "PATH=/usr/bin") {
		t.Errorf("environ() should pass PATH through unchanged, got %v", pathEntry(env))
	}
}

func TestRealRunnerEnvironPrependsExtraPath(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")

	sep := string(os.PathListSeparator)
	r := &RealRunner{ExtraPath: []string{"/opt/wit/bin", "/opt/tools"}}
	env := r.environ()

	want := "PATH=/opt/wit/bin" + sep + "/opt/tools" + sep + "/usr/bin"
	if !containsEnv(env, want) {
		t.Errorf("environ() PATH = %q, want %q", pathEntry(env), want)
	}
}

// A program that exists only in an ExtraPath directory must resolve, even
// though the parent's PATH has never heard of it.
func TestRealRunnerLookPathPrefersExtraPath(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "witness-lookpath-stub")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil { //nolint:gosec // test fixture must be executable
		t.Fatalf("failed to write stub: %v", err)
	}

	r := &RealRunner{ExtraPath: []string{binDir}}
	got, err := r.lookPath("witness-lookpath-stub")
	if err != nil {
		t.Fatalf("lookPath failed: %v", err)
	}
	if got != stub {
		t.Errorf("lookPath = %q, want %q", got, stub)
	}
}

func TestRealRunnerLookPathSkipsNonExecutable(t *testing.T) {
	binDir := t.TempDir()
	plain := filepath.Join(binDir, "witness-lookpath-stub")
	if err := os.WriteFile(plain, []byte("not a program"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r := &RealRunner{ExtraPath: []string{binDir}}
	if _, err := r.lookPath("witness-lookpath-stub"); err == nil {
		t.Error("expected error: non-executable file must not resolve")
	}
}

func TestRealRunnerLookPathExplicitPathPassesThrough(t *testing.T) {
	r := &RealRunner{ExtraPath: []string{"/nonexistent"}}
	got, err := r.lookPath("/bin/sh")
	if err != nil {
		t.Fatalf("lookPath failed: %v", err)
	}
	if got != "/bin/sh" {
		t.Errorf("lookPath = %q, want %q", got, "/bin/sh")
	}
}

func containsEnv(env []string, kv string) bool {
	for _, e := range env {
		if e == kv {
			return true
		}
	}
	return false
}

func pathEntry(env []string) string {
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			return e
		}
	}
	return ""
}
