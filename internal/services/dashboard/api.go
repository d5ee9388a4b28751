package dashboard

import (
	"log"
	"math"
	"net/http"

	"github.com/louisbranch/launchdash/internal/launch"
	"github.com/louisbranch/launchdash/internal/services/dashboard/platform/httpx"
)

type summaryResponse struct {
	Sites      []string `json:"sites"`
	PayloadMin float64  `json:"payload_min"`
	PayloadMax float64  `json:"payload_max"`
	Records    int      `json:"records"`
}

// selectionResponse echoes the parsed selection. Bounds that did not parse
// are omitted because JSON cannot carry NaN.
type selectionResponse struct {
	Site string   `json:"site"`
	Low  *float64 `json:"low,omitempty"`
	High *float64 `json:"high,omitempty"`
}

type proportionsResponse struct {
	Selection selectionResponse `json:"selection"`
	Title     string            `json:"title"`
	Total     int               `json:"total"`
	Slices    []launch.Slice    `json:"slices"`
}

type correlationResponse struct {
	Selection         selectionResponse `json:"selection"`
	Title             string            `json:"title"`
	BoosterCategories []string          `json:"booster_categories"`
	Points            []launch.Point    `json:"points"`
}

func (h *handler) handleAPISummary(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, summaryResponse{
		Sites:      h.data.Sites,
		PayloadMin: h.data.PayloadMin,
		PayloadMax: h.data.PayloadMax,
		Records:    len(h.data.Records),
	})
}

func (h *handler) handleAPIProportions(w http.ResponseWriter, r *http.Request) {
	printer, _, _ := h.localize(w, r)
	sel := parseSelection(r.URL.Query(), h.data)
	slices := launch.Proportions(h.data.Records, sel)
	h.writeJSON(w, proportionsResponse{
		Selection: newSelectionResponse(sel),
		Title:     proportionTitle(printer, sel),
		Total:     launch.Total(slices),
		Slices:    slices,
	})
}

func (h *handler) handleAPICorrelation(w http.ResponseWriter, r *http.Request) {
	printer, _, _ := h.localize(w, r)
	sel := parseSelection(r.URL.Query(), h.data)
	points := launch.Correlation(h.data.Records, sel)
	h.writeJSON(w, correlationResponse{
		Selection:         newSelectionResponse(sel),
		Title:             correlationTitle(printer, sel),
		BoosterCategories: launch.BoosterCategories(points),
		Points:            points,
	})
}

func (h *handler) writeJSON(w http.ResponseWriter, payload any) {
	if err := httpx.WriteJSON(w, http.StatusOK, payload); err != nil {
		log.Printf("write json: %v", err)
	}
}

func newSelectionResponse(sel launch.Selection) selectionResponse {
	return selectionResponse{
		Site: sel.Site,
		Low:  finitePtr(sel.Low),
		High: finitePtr(sel.High),
	}
}

func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
