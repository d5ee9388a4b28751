package launch

import "strings"

// AllSites is the site selection sentinel that disables site filtering.
const AllSites = "ALL"

// Outcome is the binary result of a launch.
type Outcome int

const (
	// Failure marks a launch whose class column is 0.
	Failure Outcome = 0
	// Success marks a launch whose class column is 1.
	Success Outcome = 1
)

// String returns the chart label for the outcome.
func (o Outcome) String() string {
	if o == Success {
		return "Success"
	}
	return "Failure"
}

// Record is one launch row.
type Record struct {
	Site            string
	PayloadMass     float64
	Outcome         Outcome
	BoosterCategory string
}

// Selection is the dashboard filter state supplied with every recomputation.
type Selection struct {
	Site string
	Low  float64
	High float64
}

// AllSitesSelected reports whether the selection spans every site.
func (s Selection) AllSitesSelected() bool {
	return strings.TrimSpace(s.Site) == AllSites
}

// Slice is one labeled count in the proportion view.
type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Point is one record projected for the payload/outcome scatter view.
type Point struct {
	PayloadMass     float64 `json:"payload_mass"`
	Outcome         Outcome `json:"outcome"`
	BoosterCategory string  `json:"booster_category"`
}
