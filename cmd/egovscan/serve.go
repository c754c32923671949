package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/niraulas/egovscan/batch"
	"github.com/niraulas/egovscan/goquery"
	egohttp "github.com/niraulas/egovscan/http"
	egoslog "github.com/niraulas/egovscan/slog"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	fetcher := egoslog.NewLoggingFetcher(
		egohttp.NewFetcher(egohttp.WithTimeout(c.Timeout)),
		deps.Logger,
	)

	runner := batch.NewRunner(fetcher, goquery.NewExtractor())
	runner.Concurrency = c.Concurrency

	server := egohttp.NewServer(
		egoslog.NewLoggingBatchService(runner, deps.Logger),
		deps.Logger,
	)
	server.Addr = c.Addr

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stderr, "listening on %s\n", server.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stderr, "shutting down")
	return server.Close()
}
