package tools

import (
	"context"
	"encoding/json"

	"github.com/plausible-tools/plausible-mcp-server/internal/mcp"
	"github.com/plausible-tools/plausible-mcp-server/internal/protocol"
)

// Querier is the capability the tool needs from the Plausible client.
type Querier interface {
	Query(ctx context.Context, siteID string, metrics []string, dateRange string) (json.RawMessage, error)
}

// plausibleQueryTool forwards validated stats queries upstream.
type plausibleQueryTool struct {
	client Querier
}

// PlausibleQuery constructs the analytics query tool.
func PlausibleQuery(client Querier) *plausibleQueryTool {
	return &plausibleQueryTool{client: client}
}

func (t *plausibleQueryTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "plausible_query",
		Description: "Query the Plausible Analytics API for site metrics over a date range.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"site_id": {
					Type:        "string",
					Description: "Site domain as registered in Plausible, e.g. example.com",
				},
				"metrics": {
					Type:        "array",
					Items:       &protocol.JSONSchema{Type: "string"},
					Description: "Metric names, e.g. visitors, pageviews, bounce_rate",
				},
				"date_range": {
					Type:        "string",
					Description: "Date range shorthand such as 7d or 30d",
				},
			},
			Required: []string{"site_id", "metrics", "date_range"},
		},
	}
}

type queryArgs struct {
	SiteID    string   `json:"site_id"`
	Metrics   []string `json:"metrics"`
	DateRange string   `json:"date_range"`
}

func (t *plausibleQueryTool) Invoke(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
	args, err := parseQueryArgs(raw)
	if err != nil {
		return nil, err
	}
	return t.client.Query(ctx, args.SiteID, args.Metrics, args.DateRange)
}

// parseQueryArgs checks presence only. Metric names and the date range
// format pass through untouched; the upstream API is the authority on
// their validity.
func parseQueryArgs(raw json.RawMessage) (queryArgs, error) {
	var args queryArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return queryArgs{}, &mcp.ValidationError{Reason: "invalid arguments: " + err.Error()}
		}
	}
	if args.SiteID == "" || len(args.Metrics) == 0 || args.DateRange == "" {
		return queryArgs{}, &mcp.ValidationError{Reason: "Missing required arguments: site_id, metrics, and date_range"}
	}
	return args, nil
}
