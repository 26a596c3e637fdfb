package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/tabletop/internal/confirm"
	"github.com/idilsaglam/tabletop/internal/dice"
	"github.com/idilsaglam/tabletop/internal/initiative"
	"github.com/idilsaglam/tabletop/internal/roster"
	"github.com/idilsaglam/tabletop/internal/session"
	"github.com/idilsaglam/tabletop/internal/tui"
	"github.com/idilsaglam/tabletop/internal/ui"
)

// App is everything a command needs. Each module shares the one Session.
type App struct {
	Session    *session.Session
	Roster     *roster.Roster
	Initiative *initiative.Tracker
	Roller     *dice.Roller
	History    *dice.History
	Confirm    confirm.Confirmer
	Print      ui.Printer
	Log        *zap.Logger
}

// NewApp wires the modules around s.
func NewApp(s *session.Session, roller *dice.Roller, cf confirm.Confirmer, p ui.Printer) *App {
	return &App{
		Session:    s,
		Roster:     roster.New(s),
		Initiative: initiative.New(s),
		Roller:     roller,
		History:    dice.NewHistory(),
		Confirm:    cf,
		Print:      p,
		Log:        s.Logger(),
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.PrintHelp()
		return 2
	}
	cmd, rest := args[0], args[1:]
	a.Log.Debug("command", zap.String("cmd", cmd), zap.Strings("args", rest))

	switch cmd {
	case "help", "-h", "--help":
		a.PrintHelp()
		return 0
	case "char", "chars":
		return a.runChar(ctx, rest)
	case "roll":
		if len(rest) == 0 {
			a.Print.Fail("usage: tabletop roll <notation...>")
			return 2
		}
		return a.doRoll(rest)
	case "init":
		return a.runInit(ctx, rest)
	case "tui":
		if err := tui.Run(ctx, tui.Deps{
			Roster:     a.Roster,
			Initiative: a.Initiative,
			Roller:     a.Roller,
			History:    a.History,
		}); err != nil {
			a.Print.Fail("tui: " + err.Error())
			return 1
		}
		return 0
	}

	a.Print.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(a.Print.Err)
	a.PrintHelp()
	return 2
}

func (a *App) PrintHelp() { Usage(a.Print.Out) }

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, `tabletop - a companion for tabletop sessions

Usage:
  tabletop [flags] <subcommand> [args]

Subcommands:
  char ls                           List characters
  char add <name> [key=value...]    Add a character
  char edit <id> key=value...       Change some fields of a character
  char rm <id>                      Delete a character (asks first)
  roll <notation...>                Roll dice, e.g. d20, 2d6+3, 3d8-2
  init ls                           Show the turn order
  init add <name> <value>           Add a combatant
  init rm <id>                      Remove a combatant
  init clear                        Remove every combatant (asks first)
  tui                               Interactive mode

Character keys: name, class, level, maxhp, hp, ac

Examples:
  tabletop char add Aria class=Wizard level=5 maxhp=28 ac=12
  tabletop char edit 1718000000000 hp=9
  tabletop roll d20 2d6+3
  tabletop init add Goblin 14
`)
}

// parseID reads a record id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an id: %s", s)
	}
	return id, nil
}

// usageError reports whether err came from bad user input rather than
// from storage.
func usageError(err error) bool {
	return errors.Is(err, roster.ErrInvalidCharacter) ||
		errors.Is(err, initiative.ErrMissingName) ||
		errors.Is(err, initiative.ErrInvalidValue) ||
		errors.Is(err, dice.ErrInvalidNotation) ||
		errors.Is(err, dice.ErrInvalidSpec)
}

func (a *App) failErr(prefix string, err error) int {
	a.Print.Fail(prefix + ": " + err.Error())
	if usageError(err) {
		return 2
	}
	return 1
}
