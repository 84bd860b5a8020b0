package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/plausible-tools/plausible-mcp-server/internal/app"
	"github.com/plausible-tools/plausible-mcp-server/internal/logging"
	"github.com/plausible-tools/plausible-mcp-server/internal/mcp"
	"github.com/plausible-tools/plausible-mcp-server/internal/plausible"
	"github.com/plausible-tools/plausible-mcp-server/internal/version"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", envOr("MCP_HTTP_ADDR", ""), "also serve MCP over HTTP on this address (e.g., :3333)")
	flag.Parse()

	// Stdout carries protocol frames, so diagnostics go to a log file
	// and fatal startup errors to stderr.
	logger, closeLog, err := logging.New("mcp-server")
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer closeLog()

	cfg, err := plausible.ConfigFromEnv()
	if err != nil {
		logger.Errorf("startup: %v", err)
		log.Fatalf("startup: %v", err)
	}

	logger.Infof("plausible-mcp-server %s starting (upstream %s)", version.Get(), cfg.BaseURL)
	server := app.NewServer(cfg, logger)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return mcp.RunStdio(ctx, server, os.Stdin, os.Stdout, logger)
	})
	if *httpAddr != "" {
		addr := *httpAddr
		g.Go(func() error {
			return mcp.RunHTTP(server, addr)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Errorf("server error: %v", err)
		log.Fatalf("server error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
