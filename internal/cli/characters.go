package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/tabletop/internal/model"
	"github.com/idilsaglam/tabletop/internal/roster"
	"github.com/idilsaglam/tabletop/internal/ui"
)

func (a *App) runChar(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return a.doCharList()
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "ls":
		return a.doCharList()

	case "add":
		if len(rest) == 0 || strings.Contains(rest[0], "=") {
			a.Print.Fail("usage: tabletop char add <name> [key=value...]")
			return 2
		}
		f, err := parseFields(rest[1:])
		if err != nil {
			a.Print.Fail("add: " + err.Error())
			return 2
		}
		name := rest[0]
		f.Name = &name
		// a fresh character starts at full health unless told otherwise
		if f.CurrentHP == nil && f.MaxHP != nil {
			hp := *f.MaxHP
			f.CurrentHP = &hp
		}
		return a.doCharAdd(ctx, f)

	case "edit":
		if len(rest) < 2 {
			a.Print.Fail("usage: tabletop char edit <id> key=value...")
			return 2
		}
		id, err := parseID(rest[0])
		if err != nil {
			a.Print.Fail("edit: " + err.Error())
			return 2
		}
		f, err := parseFields(rest[1:])
		if err != nil {
			a.Print.Fail("edit: " + err.Error())
			return 2
		}
		return a.doCharEdit(ctx, id, f)

	case "rm":
		if len(rest) != 1 {
			a.Print.Fail("usage: tabletop char rm <id>")
			return 2
		}
		id, err := parseID(rest[0])
		if err != nil {
			a.Print.Fail("rm: " + err.Error())
			return 2
		}
		return a.doCharRemove(ctx, id)
	}
	a.Print.Fail("unknown char subcommand: " + sub)
	return 2
}

// -------------- subcommand impls ----------------

func (a *App) doCharList() int {
	t := ui.Current()
	chars := a.Roster.List()

	lines := []string{
		fmt.Sprintf("%s  %s %d", t.Title.Render("Characters"), t.Accent.Render("Total"), len(chars)),
		"",
	}
	lines = append(lines, characterLines(chars)...)
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `tabletop char add Aria class=Wizard maxhp=28`"))
	a.Print.Panel(lines)
	return 0
}

func (a *App) doCharAdd(ctx context.Context, f model.CharacterFields) int {
	c, err := a.Roster.Create(ctx, f)
	if err != nil {
		return a.failErr("add", err)
	}
	a.Print.OK(fmt.Sprintf("added %s (#%d)", c.Name, c.ID))
	return 0
}

func (a *App) doCharEdit(ctx context.Context, id int64, f model.CharacterFields) int {
	c, err := a.Roster.Update(ctx, id, f)
	if errors.Is(err, roster.ErrNotFound) {
		a.Print.Warn(fmt.Sprintf("no character #%d, nothing to edit", id))
		return 0
	}
	if err != nil {
		return a.failErr("edit", err)
	}
	a.Print.OK("updated " + c.Name)
	return 0
}

func (a *App) doCharRemove(ctx context.Context, id int64) int {
	c, ok := a.Roster.Get(id)
	if !ok {
		a.Print.Warn(fmt.Sprintf("no character #%d, nothing to delete", id))
		return 0
	}
	removed, err := a.Roster.Delete(ctx, id, a.Confirm)
	if err != nil {
		return a.failErr("rm", err)
	}
	if !removed {
		a.Print.Warn("kept " + c.Name)
		return 0
	}
	a.Print.OK("deleted " + c.Name)
	return 0
}

// parseFields reads key=value pairs into a partial character.
func parseFields(args []string) (model.CharacterFields, error) {
	var f model.CharacterFields
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return f, fmt.Errorf("expected key=value, got %q", arg)
		}
		k = strings.ToLower(strings.TrimSpace(k))
		switch k {
		case "name":
			s := v
			f.Name = &s
			continue
		case "class":
			s := v
			f.Class = &s
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return f, fmt.Errorf("%s: not a number: %s", k, v)
		}
		switch k {
		case "level":
			f.Level = &n
		case "maxhp":
			f.MaxHP = &n
		case "hp", "currenthp":
			f.CurrentHP = &n
		case "ac":
			f.AC = &n
		default:
			return f, fmt.Errorf("unknown key %q", k)
		}
	}
	return f, nil
}

// -------------- rendering helpers --------------

func characterLines(chars []model.Character) []string {
	t := ui.Current()
	if len(chars) == 0 {
		return []string{t.Muted.Render("No characters yet. Add your first character to get started!")}
	}
	out := make([]string, 0, len(chars)*3)
	for i, c := range chars {
		if i > 0 {
			out = append(out, "")
		}
		name := c.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		out = append(out,
			fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("#%d", c.ID)), t.Title.Render(name)),
			fmt.Sprintf("  %s - Level %d   AC %d", c.Class, c.Level, c.AC),
			"  "+ui.HPBar(c.CurrentHP, c.MaxHP, 20),
		)
	}
	return out
}
