package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command output to Out and diagnostics to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func Stdio() Printer { return Printer{Out: os.Stdout, Err: os.Stderr} }

func (p Printer) OK(msg string) {
	t := Current()
	fmt.Fprintln(p.Out, t.Success.Render(t.SymOK+" "+msg))
}

func (p Printer) Fail(msg string) {
	t := Current()
	fmt.Fprintln(p.Err, t.Error.Render(t.SymFail+" "+msg))
}

func (p Printer) Warn(msg string) {
	t := Current()
	fmt.Fprintln(p.Err, t.Pending.Render(t.SymWarn+" "+msg))
}

// Panel draws a framed box using the current theme.
func (p Printer) Panel(lines []string) {
	fmt.Fprintln(p.Out, PanelString(strings.Join(lines, "\n")))
}

func PanelString(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}
