package domain

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/louisbranch/launchdash/internal/dataset"
	"github.com/louisbranch/launchdash/internal/launch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// errDatasetRequired is returned by handlers built without a dataset.
var errDatasetRequired = errors.New("launch dataset is not loaded")

// LaunchSummaryInput represents the MCP tool input for the dataset summary.
type LaunchSummaryInput struct{}

// LaunchSummaryResult represents the MCP tool output for the dataset summary.
type LaunchSummaryResult struct {
	Sites      []string `json:"sites" jsonschema:"launch sites in first-appearance order"`
	PayloadMin float64  `json:"payload_min" jsonschema:"smallest payload mass in kg"`
	PayloadMax float64  `json:"payload_max" jsonschema:"largest payload mass in kg"`
	Records    int      `json:"records" jsonschema:"number of launch records"`
}

// SuccessProportionsInput represents the MCP tool input for the proportion view.
type SuccessProportionsInput struct {
	Site string `json:"site,omitempty" jsonschema:"launch site, or ALL for every site (default ALL)"`
}

// SuccessProportionsResult represents the MCP tool output for the proportion view.
type SuccessProportionsResult struct {
	Site   string         `json:"site" jsonschema:"selected site or ALL"`
	Total  int            `json:"total" jsonschema:"sum of all slice counts"`
	Slices []launch.Slice `json:"slices" jsonschema:"successes per site for ALL, otherwise Success and Failure counts"`
}

// PayloadCorrelationInput represents the MCP tool input for the scatter view.
type PayloadCorrelationInput struct {
	Site       string   `json:"site,omitempty" jsonschema:"launch site, or ALL for every site (default ALL)"`
	PayloadMin *float64 `json:"payload_min,omitempty" jsonschema:"inclusive lower payload bound in kg (defaults to the dataset minimum)"`
	PayloadMax *float64 `json:"payload_max,omitempty" jsonschema:"inclusive upper payload bound in kg (defaults to the dataset maximum)"`
}

// PayloadCorrelationResult represents the MCP tool output for the scatter view.
type PayloadCorrelationResult struct {
	Site              string         `json:"site" jsonschema:"selected site or ALL"`
	PayloadMin        float64        `json:"payload_min" jsonschema:"applied lower payload bound in kg"`
	PayloadMax        float64        `json:"payload_max" jsonschema:"applied upper payload bound in kg"`
	BoosterCategories []string       `json:"booster_categories" jsonschema:"booster categories present in points, in first-appearance order"`
	Points            []launch.Point `json:"points" jsonschema:"one point per matching launch; outcome is 1 for success and 0 for failure"`
}

// LaunchSummaryTool defines the MCP tool schema for the dataset summary.
func LaunchSummaryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "launch_summary",
		Description: "Describes the loaded launch records: sites, payload range and record count",
	}
}

// SuccessProportionsTool defines the MCP tool schema for the proportion view.
func SuccessProportionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "launch_success_proportions",
		Description: "Counts successful launches per site, or successes and failures for one site",
	}
}

// PayloadCorrelationTool defines the MCP tool schema for the scatter view.
func PayloadCorrelationTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "launch_payload_correlation",
		Description: "Lists payload mass, outcome and booster category for launches matching a site and payload range",
	}
}

// LaunchSummaryHandler executes the dataset summary tool.
func LaunchSummaryHandler(data *dataset.Dataset) mcp.ToolHandlerFor[LaunchSummaryInput, LaunchSummaryResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ LaunchSummaryInput) (*mcp.CallToolResult, LaunchSummaryResult, error) {
		if data == nil {
			return nil, LaunchSummaryResult{}, errDatasetRequired
		}
		return nil, LaunchSummaryResult{
			Sites:      data.Sites,
			PayloadMin: data.PayloadMin,
			PayloadMax: data.PayloadMax,
			Records:    len(data.Records),
		}, nil
	}
}

// SuccessProportionsHandler executes the proportion view tool.
func SuccessProportionsHandler(data *dataset.Dataset) mcp.ToolHandlerFor[SuccessProportionsInput, SuccessProportionsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SuccessProportionsInput) (*mcp.CallToolResult, SuccessProportionsResult, error) {
		if data == nil {
			return nil, SuccessProportionsResult{}, errDatasetRequired
		}
		if err := ctx.Err(); err != nil {
			return nil, SuccessProportionsResult{}, err
		}
		sel := data.DefaultSelection()
		sel.Site = siteOrAll(input.Site)
		slices := launch.Proportions(data.Records, sel)
		return nil, SuccessProportionsResult{
			Site:   sel.Site,
			Total:  launch.Total(slices),
			Slices: slices,
		}, nil
	}
}

// PayloadCorrelationHandler executes the scatter view tool.
func PayloadCorrelationHandler(data *dataset.Dataset) mcp.ToolHandlerFor[PayloadCorrelationInput, PayloadCorrelationResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PayloadCorrelationInput) (*mcp.CallToolResult, PayloadCorrelationResult, error) {
		if data == nil {
			return nil, PayloadCorrelationResult{}, errDatasetRequired
		}
		if err := ctx.Err(); err != nil {
			return nil, PayloadCorrelationResult{}, err
		}
		sel := launch.Selection{
			Site: siteOrAll(input.Site),
			Low:  boundOr(input.PayloadMin, data.PayloadMin),
			High: boundOr(input.PayloadMax, data.PayloadMax),
		}
		points := launch.Correlation(data.Records, sel)
		return nil, PayloadCorrelationResult{
			Site:              sel.Site,
			PayloadMin:        sel.Low,
			PayloadMax:        sel.High,
			BoosterCategories: launch.BoosterCategories(points),
			Points:            points,
		}, nil
	}
}

func siteOrAll(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return launch.AllSites
	}
	return site
}

func boundOr(value *float64, fallback float64) float64 {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return fallback
	}
	return *value
}
