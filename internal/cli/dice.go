package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/idilsaglam/tabletop/internal/dice"
	"github.com/idilsaglam/tabletop/internal/ui"
)

// doRoll parses every argument first so one bad notation rolls nothing.
func (a *App) doRoll(args []string) int {
	specs := make([]dice.Spec, len(args))
	for i, arg := range args {
		spec, err := dice.ParseNotation(arg)
		if err != nil {
			return a.failErr("roll", err)
		}
		specs[i] = spec
	}

	for i, arg := range args {
		if sides, ok := fixedDie(arg); ok {
			v, err := a.Roller.RollSingle(sides)
			if err != nil {
				return a.failErr("roll", err)
			}
			a.History.Record(arg, v, "")
			continue
		}
		res, err := a.Roller.Roll(specs[i])
		if err != nil {
			return a.failErr("roll", err)
		}
		a.History.Record(arg, res.Total, res.Detail())
	}

	a.Print.Panel(historyLines(a.History.Entries()))
	return 0
}

// fixedDie reports whether s names one of the one-click dice, like "d20".
func fixedDie(s string) (int, bool) {
	if len(s) < 2 || (s[0] != 'd' && s[0] != 'D') {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || !slices.Contains(dice.FixedDice, n) {
		return 0, false
	}
	return n, true
}

func historyLines(records []dice.Record) []string {
	t := ui.Current()
	lines := []string{t.Title.Render("Rolls"), ""}
	if len(records) == 0 {
		return append(lines, t.Muted.Render("no rolls yet"))
	}
	for _, r := range records {
		line := fmt.Sprintf("%-10s %s", r.Label, t.Accent.Render(strconv.Itoa(r.Total)))
		if r.Detail != "" {
			line += "  " + t.Muted.Render(r.Detail)
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}
