package executor

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopak/minigrep/internal/config"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape\nTrust me.\n"

var defaultCmds = config.Commands{Commands: []config.CommandSpec{{Name: "ls"}, {Name: "pwd"}}}

func writePoem(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(p, []byte(poem), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestRun_FileCaseSensitive(t *testing.T) {
	var buf bytes.Buffer
	e := New(config.Config{Query: "duct", Target: writePoem(t)}, defaultCmds, &buf)
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := buf.String(); got != "safe, fast, productive.\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRun_FileIgnoreCase(t *testing.T) {
	var buf bytes.Buffer
	e := New(config.Config{Query: "rUsT", Target: writePoem(t), IgnoreCase: true}, defaultCmds, &buf)
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := buf.String(); got != "Rust:\nTrust me.\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRun_FileMissing(t *testing.T) {
	var buf bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.txt")
	e := New(config.Config{Query: "x", Target: missing}, defaultCmds, &buf)
	err := e.Run()
	if !errors.Is(err, ErrFileUnreadable) {
		t.Fatalf("want ErrFileUnreadable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("underlying error lost: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRun_FileInvalidUTF8(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bin.dat")
	if err := os.WriteFile(p, []byte{0xff, 0xfe, '\n'}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	e := New(config.Config{Query: "", Target: p}, defaultCmds, &bytes.Buffer{})
	if err := e.Run(); !errors.Is(err, ErrFileUnreadable) {
		t.Fatalf("want ErrFileUnreadable, got %v", err)
	}
}

func TestIsCommand(t *testing.T) {
	e := New(config.Config{}, defaultCmds, &bytes.Buffer{})
	if !e.IsCommand("ls") || !e.IsCommand("pwd") {
		t.Fatalf("allow-listed commands not recognized")
	}
	if e.IsCommand("cat") || e.IsCommand("LS") {
		t.Fatalf("unexpected command recognized")
	}
}

func TestRun_CommandPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	var buf bytes.Buffer
	e := New(config.Config{Query: "pwd", Target: filepath.Base(wd)}, defaultCmds, &buf)
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	if got == "" || !strings.Contains(got, filepath.Base(wd)) {
		t.Fatalf("output = %q, want the working directory", got)
	}
}

func TestRun_CommandPathIgnoresIgnoreCase(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	target := strings.ToUpper(filepath.Base(wd))
	if strings.Contains(wd, target) {
		t.Skip("working directory already contains the upper-cased target")
	}
	var buf bytes.Buffer
	e := New(config.Config{Query: "pwd", Target: target, IgnoreCase: true}, defaultCmds, &buf)
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("command path should stay case-sensitive, got %q", buf.String())
	}
}

func TestRun_CommandNonZeroExitIsNotFailure(t *testing.T) {
	cmds := config.Commands{Commands: []config.CommandSpec{{Name: "false"}}}
	var buf bytes.Buffer
	e := New(config.Config{Query: "false", Target: ""}, cmds, &buf)
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRun_CommandStartFailure(t *testing.T) {
	cmds := config.Commands{Commands: []config.CommandSpec{{Name: "minigrep-no-such-command"}}}
	e := New(config.Config{Query: "minigrep-no-such-command", Target: "x"}, cmds, &bytes.Buffer{})
	if err := e.Run(); !errors.Is(err, ErrCommandExecutionFailed) {
		t.Fatalf("want ErrCommandExecutionFailed, got %v", err)
	}
}

func TestRun_UnlistedQueryUsesFile(t *testing.T) {
	p := writePoem(t)
	var buf bytes.Buffer
	e := New(config.Config{Query: "Pick", Target: p}, config.Commands{}, &buf)
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := buf.String(); got != "Pick three.\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRun_CommandOutputInvalidUTF8IsReplaced(t *testing.T) {
	script := filepath.Join(t.TempDir(), "emit.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nprintf 'ok\\377line\\n'\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmds := config.Commands{Commands: []config.CommandSpec{{Name: script}}}
	var buf bytes.Buffer
	e := New(config.Config{Query: script, Target: "line"}, cmds, &buf)
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := buf.String(); got != "ok\uFFFDline\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
