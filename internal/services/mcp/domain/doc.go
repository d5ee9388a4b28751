// Package domain exposes the launch aggregators as MCP tools.
//
// Each tool answers from the dataset loaded at startup:
// - launch_summary describes the dataset,
// - launch_success_proportions returns the proportion view for a site,
// - and launch_payload_correlation returns the scatter points for a site and
// payload range.
//
// Results carry the same numbers the dashboard charts draw.
package domain
