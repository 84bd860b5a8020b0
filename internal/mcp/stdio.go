package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/plausible-tools/plausible-mcp-server/internal/protocol"
)

// RunStdio serves MCP JSON-RPC requests over the given streams until
// the input closes. Notifications produce no reply. Diagnostics go to
// the logger; out carries protocol frames only.
func RunStdio(ctx context.Context, server *Server, in io.Reader, out io.Writer, log *logrus.Entry) error {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	decoder := json.NewDecoder(bufio.NewReader(in))
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)

	for {
		var req protocol.Request
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Info("stdin closed, shutting down")
				return nil
			}
			return fmt.Errorf("read request: %w", err)
		}

		resp, err := server.Handle(ctx, req)
		if err != nil {
			log.Errorf("handle %s: %v", req.Method, err)
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if resp == nil {
			continue
		}

		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
}
