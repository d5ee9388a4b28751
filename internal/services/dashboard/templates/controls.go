package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Control and output element ids shared by the page and the binding layer.
const (
	ControlsID           = "dashboard-controls"
	SiteDropdownID       = "site-dropdown"
	PayloadSliderID      = "payload-slider"
	PayloadMarksID       = "payload-marks"
	ProportionChartID    = "success-pie-chart"
	CorrelationChartID   = "success-payload-scatter-chart"
	payloadLowInputID    = "payload-low"
	payloadHighInputID   = "payload-high"
	controlsSyncStrategy = "#" + ControlsID + ":replace"
)

// SiteOption is one choice in the site dropdown.
type SiteOption struct {
	Value    string
	Label    string
	Selected bool
}

// ControlsView describes the site dropdown and the payload range selector.
type ControlsView struct {
	// ChartsURL receives the HTMX requests fired by the controls.
	ChartsURL string
	Lang      string

	SiteLabel string
	Sites     []SiteOption

	PayloadLabel string
	LowLabel     string
	HighLabel    string
	Min          float64
	Max          float64
	Step         float64
	Low          float64
	High         float64
	Marks        []float64
}

// Controls renders the dashboard control form. Each control issues its own
// HTMX request so HX-Trigger names the control that changed, and all
// controls share one sync scope so only the latest selection is applied.
func Controls(view ControlsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<form class="dashboard-controls"`)
		hw.attr("id", ControlsID)
		hw.attr("action", view.ChartsURL)
		hw.raw(` method="get">`)
		if view.Lang != "" {
			hw.raw(`<input type="hidden" name="lang"`)
			hw.attr("value", view.Lang)
			hw.raw(">")
		}

		hw.raw(`<label class="control-label"`)
		hw.attr("for", SiteDropdownID)
		hw.raw(">")
		hw.text(view.SiteLabel)
		hw.raw(`</label><select name="site"`)
		hw.attr("id", SiteDropdownID)
		writeHTMXAttrs(hw, view.ChartsURL)
		hw.raw(">")
		for _, option := range view.Sites {
			hw.raw("<option")
			hw.attr("value", option.Value)
			hw.boolAttr("selected", option.Selected)
			hw.raw(">")
			hw.text(option.Label)
			hw.raw("</option>")
		}
		hw.raw("</select>")

		hw.raw(`<fieldset class="payload-range"`)
		hw.attr("id", PayloadSliderID)
		writeHTMXAttrs(hw, view.ChartsURL)
		hw.raw("><legend>")
		hw.text(view.PayloadLabel)
		hw.raw("</legend>")
		writeRangeInput(hw, payloadLowInputID, "low", view.LowLabel, view.Low, view)
		writeRangeInput(hw, payloadHighInputID, "high", view.HighLabel, view.High, view)
		hw.raw("<datalist")
		hw.attr("id", PayloadMarksID)
		hw.raw(">")
		for _, mark := range view.Marks {
			hw.raw("<option")
			hw.attr("value", formatNumber(mark))
			hw.attr("label", formatNumber(mark))
			hw.raw("></option>")
		}
		hw.raw("</datalist></fieldset></form>")
		return hw.err
	})
}

func writeHTMXAttrs(hw *htmlWriter, chartsURL string) {
	hw.attr("hx-get", chartsURL)
	hw.attr("hx-trigger", "change")
	hw.attr("hx-include", "#"+ControlsID)
	hw.attr("hx-sync", controlsSyncStrategy)
	hw.attr("hx-swap", "none")
	hw.attr("hx-push-url", "true")
}

func writeRangeInput(hw *htmlWriter, id, name, label string, value float64, view ControlsView) {
	hw.raw(`<label class="range-label"`)
	hw.attr("for", id)
	hw.raw(">")
	hw.text(label)
	hw.raw(`</label><input type="range"`)
	hw.attr("id", id)
	hw.attr("name", name)
	hw.attr("min", formatNumber(view.Min))
	hw.attr("max", formatNumber(view.Max))
	hw.attr("step", formatNumber(view.Step))
	hw.attr("value", formatNumber(value))
	hw.attr("list", PayloadMarksID)
	hw.raw("><output")
	hw.attr("for", id)
	hw.raw(">")
	hw.text(formatNumber(value))
	hw.raw("</output>")
}
