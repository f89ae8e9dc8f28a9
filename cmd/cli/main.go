package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/travelstory-server/internal/client/api"
	"github.com/dtroode/travelstory-server/internal/client/cli"
	"github.com/dtroode/travelstory-server/internal/client/config"
	"github.com/dtroode/travelstory-server/internal/client/dashboard"
	"github.com/dtroode/travelstory-server/internal/logger"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logger.NewWithWriter(os.Stderr, cfg.LogLevel)

	fmt.Printf("travelstory %s (%s, %s)\n", buildVersion, buildDate, buildCommit)

	client := api.New(cfg.ServerURL, &http.Client{Timeout: cfg.RequestTimeout})
	store := dashboard.NewStore(client, dashboard.Options{
		Debounce:       cfg.Debounce,
		MinQueryLength: cfg.MinQueryLength,
	}, logger)
	defer store.Close()

	app := cli.NewApp(client, store, os.Stdin, os.Stdout, logger)

	// A pending read on stdin does not notice the signal, so the loop runs aside.
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		fmt.Println()
	}
}
