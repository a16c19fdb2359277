package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopak/minigrep/internal/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintCommands writes the allow-list table to w.
func PrintCommands(w io.Writer, cmds config.Commands) error {
	_, err := fmt.Fprint(w, renderCommands(cmds))
	return err
}

func renderCommands(cmds config.Commands) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("commands") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Command", "Description"})
	for _, c := range cmds.Commands {
		d := c.Description
		if d == "" {
			d = "-"
		}
		tw.AppendRow(table.Row{c.Name, d})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
