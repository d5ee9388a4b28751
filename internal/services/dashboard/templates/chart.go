package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ChartView is one chart region. An empty SVG renders EmptyText instead.
type ChartView struct {
	ID        string
	Title     string
	SVG       string
	EmptyText string
}

// Chart renders a chart region. With oob set the region is marked for an
// HTMX out-of-band swap onto the element with the same id.
func Chart(view ChartView, oob bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="chart"`)
		hw.attr("id", view.ID)
		if oob {
			hw.raw(` hx-swap-oob="true"`)
		}
		hw.raw(` aria-live="polite"><h2 class="chart-title">`)
		hw.text(view.Title)
		hw.raw("</h2>")
		if view.SVG == "" {
			hw.raw(`<p class="chart-empty">`)
			hw.text(view.EmptyText)
			hw.raw("</p>")
		} else {
			hw.raw(`<figure class="chart-figure">`)
			hw.raw(view.SVG)
			hw.raw("</figure>")
		}
		hw.raw("</section>")
		return hw.err
	})
}

// OutOfBand renders every view as an out-of-band chart region.
func OutOfBand(views []ChartView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, view := range views {
			if err := Chart(view, true).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
