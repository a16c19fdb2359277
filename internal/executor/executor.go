// Package executor decides where the searched text comes from, fetches it,
// filters it and prints the matching lines.
package executor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/executil"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/search"
)

var (
	ErrFileUnreadable         = errors.New("file unreadable")
	ErrCommandExecutionFailed = errors.New("command execution failed")
)

type Executor struct {
	cfg  config.Config
	cmds config.Commands
	out  io.Writer
}

func New(cfg config.Config, cmds config.Commands, out io.Writer) *Executor {
	return &Executor{cfg: cfg, cmds: cmds, out: out}
}

// IsCommand reports whether query names an allow-listed command.
func (e *Executor) IsCommand(query string) bool { return e.cmds.Contains(query) }

// Run takes the command path when the query is allow-listed and the file
// path otherwise.
func (e *Executor) Run() error {
	if e.IsCommand(e.cfg.Query) {
		return e.RunCommand()
	}
	return e.RunFile()
}

// RunFile searches the file named by Target for Query.
func (e *Executor) RunFile() error {
	logging.Debug(fmt.Sprintf("file [%s]: query=%q ignore_case=%v", e.cfg.Target, e.cfg.Query, e.cfg.IgnoreCase))
	b, err := os.ReadFile(e.cfg.Target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("%w: %s: stream did not contain valid UTF-8", ErrFileUnreadable, e.cfg.Target)
	}
	var lines []string
	if e.cfg.IgnoreCase {
		lines = search.SearchCaseInsensitive(e.cfg.Query, string(b))
	} else {
		lines = search.Search(e.cfg.Query, string(b))
	}
	return e.print(lines)
}

// RunCommand runs Query with no arguments and prints the output lines
// containing Target. The comparison is always case-sensitive.
func (e *Executor) RunCommand() error {
	logging.Debug(fmt.Sprintf("command [%s]: target=%q", e.cfg.Query, e.cfg.Target))
	res, err := executil.Run(e.cfg.Query)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCommandExecutionFailed, e.cfg.Query, err)
	}
	if res.Code != 0 {
		logging.Debug(fmt.Sprintf("command [%s]: exit=%d %s", e.cfg.Query, res.Code, strings.TrimSpace(res.Stderr)))
	}
	stdout := strings.ToValidUTF8(res.Stdout, string(utf8.RuneError))
	return e.print(search.Search(e.cfg.Target, stdout))
}

func (e *Executor) print(lines []string) error {
	logging.Debug(fmt.Sprintf("matches: %d", len(lines)))
	for _, l := range lines {
		if _, err := fmt.Fprintln(e.out, l); err != nil {
			return err
		}
	}
	return nil
}
