package mcp

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/plausible-tools/plausible-mcp-server/internal/protocol"
)

// NewHTTPHandler serves MCP JSON-RPC requests via POST to the root
// path, one request per call, plus a /health probe.
func NewHTTPHandler(server *Server) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req protocol.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, &protocol.Response{Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}

		resp, err := server.Handle(r.Context(), req)
		if err != nil {
			writeJSON(w, WriteError(req.ID, -32603, "internal error", err), http.StatusInternalServerError)
			return
		}
		if resp == nil {
			w.WriteHeader(http.StatusAccepted)
			return
		}

		writeJSON(w, resp, http.StatusOK)
	})

	return mux
}

// RunHTTP starts an HTTP server for MCP JSON-RPC requests.
func RunHTTP(server *Server, addr string) error {
	log.Printf("HTTP MCP server listening on %s", addr)
	return http.ListenAndServe(addr, NewHTTPHandler(server))
}

func writeJSON(w http.ResponseWriter, resp *protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
