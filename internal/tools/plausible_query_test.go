package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/plausible-tools/plausible-mcp-server/internal/mcp"
)

type stubQuerier struct {
	payload   json.RawMessage
	err       error
	siteID    string
	metrics   []string
	dateRange string
	calls     int
}

func (s *stubQuerier) Query(_ context.Context, siteID string, metrics []string, dateRange string) (json.RawMessage, error) {
	s.calls++
	s.siteID = siteID
	s.metrics = metrics
	s.dateRange = dateRange
	return s.payload, s.err
}

func TestDescriptor(t *testing.T) {
	desc := PlausibleQuery(nil).Descriptor()

	if desc.Name != "plausible_query" {
		t.Fatalf("name mismatch: %s", desc.Name)
	}
	if desc.InputSchema == nil {
		t.Fatalf("expected input schema")
	}
	want := []string{"site_id", "metrics", "date_range"}
	if len(desc.InputSchema.Required) != len(want) {
		t.Fatalf("required mismatch: %v", desc.InputSchema.Required)
	}
	for i, name := range want {
		if desc.InputSchema.Required[i] != name {
			t.Fatalf("required[%d] = %s, want %s", i, desc.InputSchema.Required[i], name)
		}
		if _, ok := desc.InputSchema.Properties[name]; !ok {
			t.Fatalf("missing property %s", name)
		}
	}
}

func TestInvokeMissingArguments(t *testing.T) {
	q := &stubQuerier{}
	tool := PlausibleQuery(q)

	cases := []struct {
		name string
		raw  string
	}{
		{"no site_id", `{"metrics":["visitors"],"date_range":"7d"}`},
		{"empty site_id", `{"site_id":"","metrics":["visitors"],"date_range":"7d"}`},
		{"no metrics", `{"site_id":"example.com","date_range":"7d"}`},
		{"empty metrics", `{"site_id":"example.com","metrics":[],"date_range":"7d"}`},
		{"no date_range", `{"site_id":"example.com","metrics":["visitors"]}`},
		{"empty date_range", `{"site_id":"example.com","metrics":["visitors"],"date_range":""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tool.Invoke(context.Background(), json.RawMessage(tc.raw))
			if err == nil {
				t.Fatalf("expected error")
			}
			var verr *mcp.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if err.Error() != "Missing required arguments: site_id, metrics, and date_range" {
				t.Fatalf("message mismatch: %q", err.Error())
			}
		})
	}

	if q.calls != 0 {
		t.Fatalf("upstream called %d times despite invalid args", q.calls)
	}
}

func TestInvokePassesFieldsInOrder(t *testing.T) {
	q := &stubQuerier{payload: json.RawMessage(`{"results":[]}`)}
	tool := PlausibleQuery(q)

	raw := json.RawMessage(`{"site_id":"example.com","metrics":["visitors","pageviews"],"date_range":"30d"}`)
	payload, err := tool.Invoke(context.Background(), raw)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}

	if q.siteID != "example.com" || q.dateRange != "30d" {
		t.Fatalf("argument mismatch: site=%s range=%s", q.siteID, q.dateRange)
	}
	if len(q.metrics) != 2 || q.metrics[0] != "visitors" || q.metrics[1] != "pageviews" {
		t.Fatalf("metrics mismatch: %v", q.metrics)
	}
	if string(payload) != `{"results":[]}` {
		t.Fatalf("payload mismatch: %s", payload)
	}
}

func TestInvokeAcceptsUncheckedDateRange(t *testing.T) {
	// Date range syntax is upstream's problem; any non-empty string goes
	// through.
	q := &stubQuerier{payload: json.RawMessage(`{}`)}
	tool := PlausibleQuery(q)

	raw := json.RawMessage(`{"site_id":"example.com","metrics":["visitors"],"date_range":"not-a-range"}`)
	if _, err := tool.Invoke(context.Background(), raw); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if q.dateRange != "not-a-range" {
		t.Fatalf("date range mismatch: %s", q.dateRange)
	}
}

func TestInvokePropagatesUpstreamError(t *testing.T) {
	q := &stubQuerier{err: errors.New("Plausible API error: Not Found")}
	tool := PlausibleQuery(q)

	raw := json.RawMessage(`{"site_id":"example.com","metrics":["visitors"],"date_range":"7d"}`)
	_, err := tool.Invoke(context.Background(), raw)
	if err == nil || err.Error() != "Plausible API error: Not Found" {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestInvokeMalformedArguments(t *testing.T) {
	q := &stubQuerier{}
	tool := PlausibleQuery(q)

	_, err := tool.Invoke(context.Background(), json.RawMessage(`{"site_id":42}`))
	if err == nil {
		t.Fatalf("expected error for malformed args")
	}
	if q.calls != 0 {
		t.Fatalf("upstream called despite malformed args")
	}
}
