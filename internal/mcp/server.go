package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/plausible-tools/plausible-mcp-server/internal/protocol"
	"github.com/plausible-tools/plausible-mcp-server/internal/version"
)

const protocolVersion = "2024-11-05"

// Server handles MCP JSON-RPC requests against a dispatcher.
type Server struct {
	dispatcher *Dispatcher
}

// NewServer wires a dispatcher into an MCP server.
func NewServer(d *Dispatcher) *Server {
	return &Server{dispatcher: d}
}

// Handle routes a single request. A nil response means the request was
// a notification and no reply should be written.
func (s *Server) Handle(ctx context.Context, req protocol.Request) (*protocol.Response, error) {
	if err := validateJSONRPC(req); err != nil {
		return respond(req.ID, nil, err), nil
	}

	switch req.Method {
	case "initialize":
		return respond(req.ID, map[string]any{
			"protocolVersion": protocolVersion,
			"serverInfo": map[string]string{
				"name":    "plausible-mcp-server",
				"version": version.Get().Version,
			},
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
		}, nil), nil
	case "initialized", "notifications/initialized":
		return nil, nil
	case "ping":
		return respond(req.ID, map[string]any{}, nil), nil
	case "shutdown":
		return respond(req.ID, map[string]any{}, nil), nil
	case "tools/list":
		return respond(req.ID, protocol.ListResult{Tools: s.dispatcher.Describe()}, nil), nil
	case "tools/call":
		var params protocol.CallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return respond(req.ID, nil, &protocol.ResponseError{Code: -32602, Message: "invalid params"}), nil
		}
		if params.Name == "" {
			return respond(req.ID, nil, &protocol.ResponseError{Code: -32602, Message: "tool name required"}), nil
		}
		env := s.dispatcher.Dispatch(ctx, params.Name, params.Args)
		result := protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: env.Text()}}}
		return respond(req.ID, result, nil), nil
	default:
		return respond(req.ID, nil, &protocol.ResponseError{Code: -32601, Message: "method not found"}), nil
	}
}

// WriteError builds a response with an error and wraps encode issues.
func WriteError(id any, code int, message string, err error) *protocol.Response {
	detail := message
	if err != nil {
		detail = fmt.Sprintf("%s: %v", message, err)
	}
	return respond(id, nil, &protocol.ResponseError{Code: code, Message: detail})
}

func respond(id any, result any, rpcErr *protocol.ResponseError) *protocol.Response {
	return &protocol.Response{JSONRPC: "2.0", ID: normalizeID(id), Result: result, Error: rpcErr}
}

func validateJSONRPC(req protocol.Request) *protocol.ResponseError {
	if req.JSONRPC != "" && req.JSONRPC != "2.0" {
		return &protocol.ResponseError{Code: -32600, Message: "invalid jsonrpc version"}
	}
	return nil
}

func normalizeID(id any) any {
	if id == nil {
		return "0"
	}
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return v
	case int, int32, int64, uint32, uint64:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
