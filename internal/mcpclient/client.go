package mcpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/plausible-tools/plausible-mcp-server/internal/protocol"
)

// Client issues JSON-RPC calls to an MCP server's HTTP transport. It
// backs the mcp-probe binary for poking at a running server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	counter    uint64
}

// New builds a client with a sane timeout.
func New(baseURL string) *Client {
	trimmed := baseURL
	if !strings.HasSuffix(trimmed, "/") {
		trimmed += "/"
	}
	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListTools fetches the advertised tools.
func (c *Client) ListTools(ctx context.Context) ([]protocol.ToolDescriptor, error) {
	var result protocol.ListResult
	if err := c.call(ctx, "tools/list", map[string]any{}, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a tool and returns the structured result.
func (c *Client) CallTool(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, error) {
	var result protocol.CallResult
	if err := c.call(ctx, "tools/call", protocol.CallParams{Name: name, Args: args}, &result); err != nil {
		return protocol.CallResult{}, err
	}
	return result, nil
}

func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	resp, err := c.do(ctx, method, params)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(resp.Result)
	if err != nil {
		return fmt.Errorf("marshal %s result: %w", method, err)
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("unmarshal %s result: %w", method, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, params any) (protocol.Response, error) {
	var resp protocol.Response

	payload := protocol.Request{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&c.counter, 1),
		Method:  method,
		Params:  mustRaw(params),
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return resp, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(buf))
	if err != nil {
		return resp, fmt.Errorf("build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return resp, fmt.Errorf("call mcp server: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, fmt.Errorf("mcp server returned status %d", httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return resp, fmt.Errorf("decode response: %w", err)
	}

	if resp.Error != nil {
		return resp, errors.New(resp.Error.Message)
	}

	return resp, nil
}

func mustRaw(v any) json.RawMessage {
	if v == nil {
		return json.RawMessage(`null`)
	}
	b, _ := json.Marshal(v)
	return json.RawMessage(b)
}
