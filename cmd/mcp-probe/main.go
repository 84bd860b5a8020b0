package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/plausible-tools/plausible-mcp-server/internal/mcpclient"
)

// mcp-probe pokes at a running MCP HTTP transport: lists the advertised
// tools, or calls one with a JSON argument bag.
func main() {
	serverURL := flag.String("url", "http://localhost:3333/", "MCP server HTTP URL")
	tool := flag.String("tool", "", "tool to call; lists tools when empty")
	args := flag.String("args", "{}", "JSON argument bag for -tool")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := mcpclient.New(*serverURL)

	if *tool == "" {
		tools, err := client.ListTools(ctx)
		if err != nil {
			log.Fatalf("list tools: %v", err)
		}
		for _, t := range tools {
			fmt.Printf("%s\t%s\n", t.Name, t.Description)
		}
		return
	}

	if !json.Valid([]byte(*args)) {
		log.Fatalf("-args is not valid JSON: %s", *args)
	}

	result, err := client.CallTool(ctx, *tool, json.RawMessage(*args))
	if err != nil {
		log.Fatalf("call %s: %v", *tool, err)
	}
	for _, part := range result.Content {
		fmt.Println(part.Text)
	}
}
