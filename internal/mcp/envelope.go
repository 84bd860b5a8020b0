package mcp

import (
	"bytes"
	"encoding/json"
)

// Envelope is the uniform outcome of one tool invocation: either a raw
// JSON payload from the upstream API or a failure message. Both render
// onto the same result channel; callers tell them apart by content.
type Envelope struct {
	payload json.RawMessage
	message string
	failed  bool
}

// Success wraps an upstream JSON payload.
func Success(payload json.RawMessage) Envelope {
	return Envelope{payload: payload}
}

// Failure wraps a human-readable error message.
func Failure(message string) Envelope {
	return Envelope{message: message, failed: true}
}

// Failed reports whether the envelope carries an error.
func (e Envelope) Failed() bool { return e.failed }

// Message returns the failure message, empty on success.
func (e Envelope) Message() string { return e.message }

// Text renders the wire form: the compact JSON payload on success, or
// {"error": "<message>"} on failure.
func (e Envelope) Text() string {
	if e.failed {
		b, _ := json.Marshal(map[string]string{"error": e.message})
		return string(b)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, e.payload); err != nil {
		return string(e.payload)
	}
	return buf.String()
}
