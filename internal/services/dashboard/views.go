package dashboard

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/louisbranch/launchdash/internal/launch"
	"github.com/louisbranch/launchdash/internal/services/dashboard/binding"
	"github.com/louisbranch/launchdash/internal/services/dashboard/charts"
	"github.com/louisbranch/launchdash/internal/services/dashboard/i18n"
	"github.com/louisbranch/launchdash/internal/services/dashboard/templates"
)

type localizerKey struct{}

func withLocalizer(ctx context.Context, loc i18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerKey{}, loc)
}

func localizerFrom(ctx context.Context) i18n.Localizer {
	if loc, ok := ctx.Value(localizerKey{}).(i18n.Localizer); ok && loc != nil {
		return loc
	}
	return i18n.Printer(i18n.Default())
}

// newBindings wires each chart region to the controls it depends on.
func (h *handler) newBindings(opts ...binding.Option) (*binding.Registry[templates.ChartView], error) {
	registry := binding.NewRegistry[templates.ChartView](opts...)
	callbacks := []binding.Callback[templates.ChartView]{
		{
			Output:    templates.ProportionChartID,
			Inputs:    []string{templates.SiteDropdownID},
			Recompute: h.proportionView,
		},
		{
			Output:    templates.CorrelationChartID,
			Inputs:    []string{templates.SiteDropdownID, templates.PayloadSliderID},
			Recompute: h.correlationView,
		},
	}
	for _, cb := range callbacks {
		if err := registry.Register(cb); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (h *handler) proportionView(ctx context.Context, sel launch.Selection) (templates.ChartView, error) {
	loc := localizerFrom(ctx)
	slices := launch.Proportions(h.data.Records, sel)
	svg, err := renderSVG(func(w io.Writer) error {
		return charts.Proportion(w, slices)
	})
	if err != nil {
		return templates.ChartView{}, err
	}
	return templates.ChartView{
		ID:        templates.ProportionChartID,
		Title:     proportionTitle(loc, sel),
		SVG:       svg,
		EmptyText: loc.Sprintf("dashboard.chart.empty"),
	}, nil
}

func (h *handler) correlationView(ctx context.Context, sel launch.Selection) (templates.ChartView, error) {
	loc := localizerFrom(ctx)
	points := launch.Correlation(h.data.Records, sel)
	svg, err := renderSVG(func(w io.Writer) error {
		return charts.Correlation(w, points, charts.Axes{
			XName: loc.Sprintf("dashboard.axis.payload"),
			YName: loc.Sprintf("dashboard.axis.outcome"),
			Low:   sel.Low,
			High:  sel.High,
		})
	})
	if err != nil {
		return templates.ChartView{}, err
	}
	return templates.ChartView{
		ID:        templates.CorrelationChartID,
		Title:     correlationTitle(loc, sel),
		SVG:       svg,
		EmptyText: loc.Sprintf("dashboard.chart.empty"),
	}, nil
}

func proportionTitle(loc i18n.Localizer, sel launch.Selection) string {
	if sel.AllSitesSelected() {
		return loc.Sprintf("dashboard.proportion.title.all")
	}
	return loc.Sprintf("dashboard.proportion.title.site", sel.Site)
}

func correlationTitle(loc i18n.Localizer, sel launch.Selection) string {
	if sel.AllSitesSelected() {
		return loc.Sprintf("dashboard.correlation.title.all")
	}
	return loc.Sprintf("dashboard.correlation.title.site", sel.Site)
}

// renderSVG captures a chart as a string. Empty data yields "" so the region
// shows its empty state.
func renderSVG(render func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			return "", nil
		}
		return "", err
	}
	return buf.String(), nil
}
