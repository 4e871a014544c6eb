// MiniChess - 5x5 chess against a random opponent, built with Ebitengine
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/hailam/minichess/internal/config"
	"github.com/hailam/minichess/internal/engine"
	"github.com/hailam/minichess/internal/game"
	"github.com/hailam/minichess/internal/obslog"
	"github.com/hailam/minichess/internal/ui"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	cmd := &cli.Command{
		Name:  "minichess",
		Usage: "play 5x5 chess against a random opponent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				Sources: cli.EnvVars("MINICHESS_CONFIG"),
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "opponent random seed, 0 for a time-based seed",
			},
			&cli.BoolFlag{
				Name:  "mute",
				Usage: "start with sound effects off",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every ply at debug level",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Uint64("seed")
	}
	if cmd.Bool("mute") {
		cfg.Sound = false
	}
	if cmd.Bool("debug") {
		cfg.Log.Level = "debug"
	}

	logger, err := obslog.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	obslog.Set(logger)

	session := game.New(
		game.WithEngine(engine.NewSeeded(cfg.Seed)),
		game.WithLogger(logger),
	)
	window := ui.NewGame(session, cfg, logger)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("MiniChess")

	logger.Info("starting window", zap.Uint64("seed", cfg.Seed), zap.Bool("sound", cfg.Sound))
	return ebiten.RunGame(window)
}
