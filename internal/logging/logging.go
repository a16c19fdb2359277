package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

var out io.Writer = os.Stderr
var verbose bool
var colored = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

// Init routes the debug trail to the diagnostics writer.
func Init() {
	log.SetOutput(out)
	log.SetFlags(0)
}

// SetOutput replaces the diagnostics writer. Color is disabled for anything
// other than a terminal standard error.
func SetOutput(w io.Writer) {
	out = w
	colored = false
	if f, ok := w.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	log.SetOutput(w)
}

func paint(c text.Color, s string) string {
	if !colored {
		return s
	}
	return c.Sprint(s)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(out, paint(text.FgRed, msg))
}

// SetVerbose toggles the debug trail.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	log.Println(paint(text.FgHiBlack, "[DEBUG] "+msg))
}
