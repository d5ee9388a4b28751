// Package routepath names the dashboard's HTTP routes.
package routepath

import "net/url"

const (
	Root         = "/"
	StaticPrefix = "/static/"
	Health       = "/healthz"
)

const (
	Charts           = "/charts"
	ChartProportion  = "/charts/proportion"
	ChartCorrelation = "/charts/correlation"
	APIPrefix        = "/api/"
	APISummary       = "/api/summary"
	APIProportions   = "/api/proportions"
	APICorrelation   = "/api/correlation"
	StaticStylesheet = StaticPrefix + "dashboard.css"
	StaticScript     = StaticPrefix + "dashboard.js"
)

// WithQuery appends an encoded query string to path when query is non-empty.
func WithQuery(path string, query url.Values) string {
	if encoded := query.Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}
