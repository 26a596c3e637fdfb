package cli

import (
	"context"
	"fmt"

	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/ui"
)

func (a *App) runInit(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return a.doInitList()
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "ls":
		return a.doInitList()

	case "add":
		if len(rest) != 2 {
			a.Print.Fail("usage: tabletop init add <name> <value>")
			return 2
		}
		e, err := a.Initiative.Add(ctx, rest[0], rest[1])
		if err != nil {
			return a.failErr("init add", err)
		}
		a.Print.OK(fmt.Sprintf("added %s at %d (#%d)", e.Name, e.Value, e.ID))
		return 0

	case "rm":
		if len(rest) != 1 {
			a.Print.Fail("usage: tabletop init rm <id>")
			return 2
		}
		id, err := parseID(rest[0])
		if err != nil {
			a.Print.Fail("init rm: " + err.Error())
			return 2
		}
		removed, err := a.Initiative.Remove(ctx, id)
		if err != nil {
			return a.failErr("init rm", err)
		}
		if !removed {
			a.Print.Warn(fmt.Sprintf("no combatant #%d, nothing to remove", id))
			return 0
		}
		a.Print.OK("removed")
		return 0

	case "clear":
		if len(a.Initiative.Entries()) == 0 {
			a.Print.Warn("turn order is already empty")
			return 0
		}
		cleared, err := a.Initiative.ClearAll(ctx, a.Confirm)
		if err != nil {
			return a.failErr("init clear", err)
		}
		if !cleared {
			a.Print.Warn("kept turn order")
			return 0
		}
		a.Print.OK("cleared")
		return 0
	}
	a.Print.Fail("unknown init subcommand: " + sub)
	return 2
}

func (a *App) doInitList() int {
	t := ui.Current()
	entries := a.Initiative.Entries()
	lines := []string{
		fmt.Sprintf("%s  %s %d", t.Title.Render("Initiative"), t.Accent.Render("Total"), len(entries)),
		"",
	}
	lines = append(lines, initiativeLines(entries)...)
	a.Print.Panel(lines)
	return 0
}

func initiativeLines(entries []model.InitiativeEntry) []string {
	t := ui.Current()
	if len(entries) == 0 {
		return []string{t.Muted.Render("No initiatives added yet. Add combatants to track turn order!")}
	}
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		mark := "  "
		name := e.Name
		if i == 0 {
			mark = t.Accent.Render(t.SymActive) + " "
			name = t.Title.Render(name)
		}
		out = append(out, fmt.Sprintf("%s%3d  %s  %s", mark, e.Value, name, t.Muted.Render(fmt.Sprintf("#%d", e.ID))))
	}
	return out
}
