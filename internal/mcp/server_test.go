package mcp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobscout/internal/config"
	"github.com/honeycarbs/jobscout/pkg/logging"
)

func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	logger := logging.Nop()

	res, err := InitializeResources(cfg, logger)
	if err != nil {
		t.Fatalf("InitializeResources: %v", err)
	}

	srv := NewServer(logger, cfg, res)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, config.Config{Host: "127.0.0.1", Port: "0"})

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestInitializeResourcesWithCredentials(t *testing.T) {
	res, err := InitializeResources(config.Config{
		Adzuna: config.Adzuna{AppID: "id", AppKey: "key"},
	}, logging.Nop())
	if err != nil {
		t.Fatalf("InitializeResources: %v", err)
	}
	if res.JobService == nil {
		t.Error("job service should be wired")
	}
}

func TestJobSearchOverStreamableHTTPWithoutCredentials(t *testing.T) {
	ts := newTestServer(t, config.Config{Host: "127.0.0.1", Port: "0"})
	ctx := context.Background()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "server-test", Version: "0.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{
		Endpoint: ts.URL + streamPath,
	}, nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	list, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(list.Tools) != 1 || list.Tools[0].Name != "job_search" {
		t.Fatalf("tools = %+v", list.Tools)
	}

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "job_search",
		Arguments: map[string]any{"query": "software engineer"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !res.IsError {
		t.Error("expected IsError without credentials")
	}

	var out string
	for _, c := range res.Content {
		if txt, ok := c.(*sdkmcp.TextContent); ok {
			out += txt.Text
		}
	}
	if !strings.Contains(out, config.EnvAdzunaAppID) || !strings.Contains(out, config.EnvAdzunaAppKey) {
		t.Errorf("text = %q", out)
	}
}
