// Package confirm gates destructive operations behind an explicit yes.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Func adapts a plain function to Confirmer.
type Func func(prompt string) bool

func (f Func) Confirm(prompt string) bool { return f(prompt) }

var (
	Always Confirmer = Func(func(string) bool { return true })
	Never  Confirmer = Func(func(string) bool { return false })
)

// Prompt asks on out and reads one line from in. Only "y" or "yes"
// (any case) confirms; EOF declines.
func Prompt(in io.Reader, out io.Writer) Confirmer {
	r := bufio.NewReader(in)
	return Func(func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
