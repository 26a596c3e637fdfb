package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/tabletop/internal/cli"
	"github.com/idilsaglam/tabletop/internal/config"
	"github.com/idilsaglam/tabletop/internal/confirm"
	"github.com/idilsaglam/tabletop/internal/dice"
	"github.com/idilsaglam/tabletop/internal/logging"
	"github.com/idilsaglam/tabletop/internal/session"
	"github.com/idilsaglam/tabletop/internal/store"
	"github.com/idilsaglam/tabletop/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("tabletop", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	yes := fs.Bool("yes", false, "answer yes to every confirmation")
	theme := fs.String("theme", "", "color theme: classic, neon or mono")
	ephemeral := fs.Bool("ephemeral", false, "keep data in memory only")
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	args := fs.Args()
	p := ui.Stdio()
	if len(args) == 0 {
		cli.Usage(p.Out)
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		p.Fail("config: " + err.Error())
		return 1
	}
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	if *ephemeral {
		cfg.Storage.Mode = store.ModeMemory
	}
	ui.SetTheme(cfg.UI.Theme)

	logger, err := logging.New(cfg.Log)
	if err != nil {
		p.Fail("logger: " + err.Error())
		return 1
	}
	defer logger.Sync()

	backend, err := store.Open(cfg.Storage)
	if err != nil {
		p.Fail("storage: " + err.Error())
		return 1
	}
	defer backend.Close()

	roller, err := dice.NewRoller(cfg.Dice.Seed)
	if err != nil {
		p.Fail("dice: " + err.Error())
		return 1
	}

	ctx := context.Background()
	s := session.Open(ctx, store.NewPersistence(backend, logger), logger)

	var cf confirm.Confirmer = confirm.Prompt(os.Stdin, os.Stderr)
	if *yes {
		cf = confirm.Always
	}

	app := cli.NewApp(s, roller, cf, p)
	code := app.Run(ctx, args)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
