package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunNonexistentFileExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"/nonexistent/path/does-not-exist.qasm"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stderr.Len() == 0 {
		t.Error("expected a diagnostic on stderr")
	}
}

func TestRunInvalidProgramExitsOne(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.qasm")
	if err := os.WriteFile(path, []byte("pudding q0"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Unknown gate") {
		t.Errorf("stderr = %q, want it to mention the unknown gate", stderr.String())
	}
}

func TestRunValidProgramExitsZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "good.qasm")
	if err := os.WriteFile(path, []byte("h q0\ncnot q0 q1"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "state,occurrences") {
		t.Errorf("stdout missing csv header: %q", stdout.String())
	}
}

func TestRunNoArgsReportsEmptyProgram(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0, stderr: %s", code, stderr.String())
	}
}
