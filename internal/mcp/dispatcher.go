package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/plausible-tools/plausible-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (json.RawMessage, error)
}

// Dispatcher validates and routes tool invocations against a static
// registry built once at startup.
type Dispatcher struct {
	tools map[string]Tool
	log   *logrus.Entry
}

// NewDispatcher constructs a dispatcher over the provided tools.
func NewDispatcher(log *logrus.Entry, tools ...Tool) *Dispatcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	m := make(map[string]Tool, len(tools))
	for _, t := range tools {
		m[t.Descriptor().Name] = t
	}
	return &Dispatcher{tools: m, log: log}
}

// Describe returns all registered tool descriptors.
func (d *Dispatcher) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(d.tools))
	for _, t := range d.tools {
		list = append(list, t.Descriptor())
	}
	return list
}

// Dispatch runs one invocation end to end. Every error — validation,
// unknown tool, upstream failure, even a panicking tool — is logged and
// folded into a Failure envelope; nothing propagates past this
// boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw json.RawMessage) (env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("tool", name).Errorf("tool panicked: %v", r)
			env = Failure(fmt.Sprintf("%v", r))
		}
	}()

	payload, err := d.run(ctx, name, raw)
	if err != nil {
		d.log.WithField("tool", name).Errorf("dispatch failed: %v", err)
		return Failure(err.Error())
	}
	return Success(payload)
}

func (d *Dispatcher) run(ctx context.Context, name string, raw json.RawMessage) (json.RawMessage, error) {
	if emptyArgs(raw) {
		return nil, &ValidationError{Reason: "Arguments are required"}
	}
	tool, ok := d.tools[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}
	return tool.Invoke(ctx, raw)
}

// emptyArgs treats a missing, null, or empty-object argument bag as
// absent. Non-object bags pass through; the tool's own parse step
// rejects them.
func emptyArgs(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var bag map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &bag); err != nil {
		return false
	}
	return len(bag) == 0
}
