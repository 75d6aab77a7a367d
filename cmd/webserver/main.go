package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/recorder"
	"github.com/trytobebee/gridsnake/pkg/server"
	"github.com/trytobebee/gridsnake/pkg/storage"
)

const shutdownTimeout = 5 * time.Second

func main() {
	opts := config.FromEnv(config.Default())

	flag.StringVar(&opts.Addr, "addr", opts.Addr, "Listen address")
	flag.IntVar(&opts.BoardSize, "size", opts.BoardSize, "Cells per board side")
	flag.DurationVar(&opts.TickInterval, "tick", opts.TickInterval, "Time between moves")
	flag.StringVar(&opts.DBPath, "db", opts.DBPath, "SQLite file for the best score")
	flag.StringVar(&opts.StaticDir, "static", opts.StaticDir, "Serve the page from this directory instead of the embedded one")
	flag.StringVar(&opts.RecordDir, "record", opts.RecordDir, "Directory for round history (empty disables)")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM, then ends every game before the
// recorder and the store are closed
func run(opts config.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, opts.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := server.Config{
		BoardSize:    opts.BoardSize,
		TickInterval: opts.TickInterval,
		StaticDir:    opts.StaticDir,
		Store:        storage.NewBestScore(store),
	}
	if opts.RecordDir != "" {
		rec, err := recorder.New(opts.RecordDir, "server")
		if err != nil {
			return err
		}
		defer rec.Close()
		cfg.Recorder = rec
	}

	gs := server.New(cfg)
	srv := &http.Server{
		Addr:    opts.Addr,
		Handler: gs.Handler(),
		// Websocket handlers are hijacked, so Shutdown does not wait for them.
		// Cancelling the base context ends their game loops instead.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Grid snake server starting on http://localhost%s", opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Println("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	gs.Wait()
	return nil
}
