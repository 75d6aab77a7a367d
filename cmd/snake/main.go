package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/game"
	"github.com/trytobebee/gridsnake/pkg/input"
	"github.com/trytobebee/gridsnake/pkg/recorder"
	"github.com/trytobebee/gridsnake/pkg/renderer"
	"github.com/trytobebee/gridsnake/pkg/storage"
)

func main() {
	opts := config.FromEnv(config.Default())

	ui := flag.String("ui", "text", "Frontend: text (ANSI) or screen (full-screen)")
	flag.IntVar(&opts.BoardSize, "size", opts.BoardSize, "Cells per board side")
	flag.DurationVar(&opts.TickInterval, "tick", opts.TickInterval, "Time between moves")
	flag.StringVar(&opts.DBPath, "db", opts.DBPath, "SQLite file for the best score")
	flag.StringVar(&opts.RecordDir, "record", opts.RecordDir, "Directory for round history (empty disables)")
	flag.Parse()

	if err := run(*ui, opts); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ui string, opts config.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := storage.Open(ctx, opts.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := game.Config{
		BoardSize:    opts.BoardSize,
		TickInterval: opts.TickInterval,
	}
	if opts.RecordDir != "" {
		rec, err := recorder.New(opts.RecordDir, "")
		if err != nil {
			return err
		}
		defer rec.Close()
		cfg.OnRoundEnd = rec.Record
	}

	switch ui {
	case "text":
		return runText(ctx, cfg, store)
	case "screen":
		return runScreen(ctx, cfg, store)
	default:
		return fmt.Errorf("unknown ui %q", ui)
	}
}

func runText(ctx context.Context, cfg game.Config, store *storage.Store) error {
	keys := input.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer keys.Stop()

	render := renderer.NewTerminalRenderer(os.Stdout)
	render.HideCursor()
	defer render.ShowCursor()

	g, err := game.NewGame(ctx, cfg, render, storage.NewBestScore(store))
	if err != nil {
		return err
	}
	if err := g.Run(ctx, keys.Actions()); err != nil && err != context.Canceled {
		return err
	}

	fmt.Printf("\n  Thanks for playing! Best: %d\n", g.Best())
	return nil
}

func runScreen(ctx context.Context, cfg game.Config, store *storage.Store) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

	g, err := game.NewGame(ctx, cfg, renderer.NewScreenRenderer(screen), storage.NewBestScore(store))
	if err != nil {
		screen.Fini()
		return err
	}
	runErr := g.Run(ctx, input.PollScreen(screen))
	screen.Fini()
	if runErr != nil && runErr != context.Canceled {
		return runErr
	}

	log.Printf("Thanks for playing! Best: %d", g.Best())
	return nil
}
