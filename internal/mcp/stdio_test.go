package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/plausible-tools/plausible-mcp-server/internal/protocol"
)

func TestRunStdioSession(t *testing.T) {
	srv := newTestServer(&stubTool{name: "stub", payload: json.RawMessage(`{"ok":true}`)})

	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"stub","arguments":{"a":1}}}`,
	}, "\n"))
	var out bytes.Buffer

	if err := RunStdio(context.Background(), srv, in, &out, quietLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 responses (notification skipped), got %d: %s", len(lines), out.String())
	}

	var last protocol.Response
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("decode last response: %v", err)
	}
	if last.Error != nil {
		t.Fatalf("unexpected error: %+v", last.Error)
	}

	raw, _ := json.Marshal(last.Result)
	var result protocol.CallResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode call result: %v", err)
	}
	if result.Content[0].Text != `{"ok":true}` {
		t.Fatalf("text mismatch: %s", result.Content[0].Text)
	}
}

func TestRunStdioEmptyInput(t *testing.T) {
	srv := newTestServer(&stubTool{name: "stub"})

	var out bytes.Buffer
	if err := RunStdio(context.Background(), srv, strings.NewReader(""), &out, quietLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %s", out.String())
	}
}

func TestRunStdioMalformedInput(t *testing.T) {
	srv := newTestServer(&stubTool{name: "stub"})

	var out bytes.Buffer
	if err := RunStdio(context.Background(), srv, strings.NewReader("{not json"), &out, quietLogger()); err == nil {
		t.Fatalf("expected decode error")
	}
}
