package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Serves MCP over stdio in one of two modes: remote (tools call the REST API
// of a running server, typically over Tailscale) or local (tools query the
// database directly).
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	remoteURL := flag.String("remote", "", "base URL of a running LiftLog server; when set, data is fetched over HTTP instead of the local database")
	catalogPath := flag.String("catalog", "", "path to the exercise catalog YAML (overrides config)")
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	catPath := *catalogPath

	if *remoteURL != "" {
		ds = mcp.NewHTTPClient(*remoteURL)
		if catPath == "" {
			log.Error("-catalog is required in remote mode")
			os.Exit(1)
		}
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		if catPath == "" {
			catPath = cfg.Catalog.Path
		}
	}

	cat, err := catalog.Load(catPath)
	if err != nil {
		log.Error("failed to load exercise catalog", "error", err)
		os.Exit(1)
	}

	s := mcp.New(ds, cat, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
