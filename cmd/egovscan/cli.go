package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds shared services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Extract service links from one or more page URLs"`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API server"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Page URLs to scrape"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"10s" help:"Per-request fetch timeout"`
	Verbose     bool          `short:"v" help:"Log each fetch to stderr"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string        `default:":8080" env:"EGOVSCAN_ADDR" help:"Listen address"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent fetch limit per batch"`
	Timeout     time.Duration `default:"10s" help:"Per-request fetch timeout"`
}
