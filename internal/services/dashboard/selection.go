package dashboard

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/launchdash/internal/dataset"
	"github.com/louisbranch/launchdash/internal/launch"
)

// Query parameters carrying the selection.
const (
	paramSite = "site"
	paramLow  = "low"
	paramHigh = "high"
)

// parseSelection reads the selection from query. A blank site selects every
// site and missing bounds default to the dataset range. Bounds that are not
// finite numbers become NaN, which no record matches.
func parseSelection(query url.Values, data *dataset.Dataset) launch.Selection {
	site := strings.TrimSpace(query.Get(paramSite))
	if site == "" {
		site = launch.AllSites
	}
	return launch.Selection{
		Site: site,
		Low:  parseBound(query.Get(paramLow), data.PayloadMin),
		High: parseBound(query.Get(paramHigh), data.PayloadMax),
	}
}

func parseBound(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(value, 0) {
		return math.NaN()
	}
	return value
}

// payloadMarks returns the multiples of every that fall within [low, high].
func payloadMarks(low, high, every float64) []float64 {
	marks := make([]float64, 0)
	if every <= 0 || high < low {
		return marks
	}
	for mark := math.Ceil(low/every) * every; mark <= high; mark += every {
		marks = append(marks, mark)
	}
	return marks
}

func finiteOr(value, fallback float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fallback
	}
	return value
}
