package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	query := flag.String("query", "software engineer", "job search keywords")
	location := flag.String("location", "", "optional location filter")
	count := flag.Int("n", 0, "results count (1-50); 0 uses the server default")
	asJSON := flag.Bool("json", false, "print the structured result instead of text")
	flag.Parse()

	// covers the worst case of three attempts plus backoff on the server
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobscout-search-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", *endpoint, err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)", session.ID())

	listTools(ctx, session)

	args := map[string]any{"query": *query}
	if *location != "" {
		args["location"] = *location
	}
	if *count != 0 {
		args["resultsCount"] = *count
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "job_search",
		Arguments: args,
	})
	if err != nil {
		log.Fatalf("job_search failed: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result.StructuredContent)
	} else {
		printResult(result)
	}

	if result.IsError {
		os.Exit(1)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		log.Printf("tool available: %s - %s", tool.Name, tool.Description)
	}
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
