package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/plausible-tools/plausible-mcp-server/internal/app"
	"github.com/plausible-tools/plausible-mcp-server/internal/logging"
	"github.com/plausible-tools/plausible-mcp-server/internal/plausible"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", ":3333", "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	logger, closeLog, err := logging.New("mcp-server")
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer closeLog()

	cfg, err := plausible.ConfigFromEnv()
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	log.Printf("mcp-server listening on %s", *httpAddr)
	if err := app.RunMCPHTTP(cfg, logger, *httpAddr); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
