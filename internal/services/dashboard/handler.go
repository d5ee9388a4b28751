package dashboard

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/launchdash/internal/dataset"
	"github.com/louisbranch/launchdash/internal/launch"
	"github.com/louisbranch/launchdash/internal/services/dashboard/binding"
	"github.com/louisbranch/launchdash/internal/services/dashboard/i18n"
	apperrors "github.com/louisbranch/launchdash/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/launchdash/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/launchdash/internal/services/dashboard/routepath"
	"github.com/louisbranch/launchdash/internal/services/dashboard/static"
	"github.com/louisbranch/launchdash/internal/services/dashboard/templates"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// markEvery spaces the payload selector's tick marks.
const markEvery = 2500

type handler struct {
	data     *dataset.Dataset
	step     float64
	bindings *binding.Registry[templates.ChartView]
}

func newHandler(data *dataset.Dataset, step float64, opts ...binding.Option) (*handler, error) {
	if data == nil {
		return nil, errors.New("dataset is required")
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("payload step must be a positive number, got %v", step)
	}
	h := &handler{data: data, step: step}
	bindings, err := h.newBindings(opts...)
	if err != nil {
		return nil, fmt.Errorf("bind charts: %w", err)
	}
	h.bindings = bindings
	return h, nil
}

func (h *handler) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+routepath.Root+"{$}", h.handlePage)
	mux.HandleFunc("GET "+routepath.Charts, h.handleCharts)
	mux.HandleFunc("GET "+routepath.ChartProportion, h.handleChartFragment(h.proportionView))
	mux.HandleFunc("GET "+routepath.ChartCorrelation, h.handleChartFragment(h.correlationView))
	mux.HandleFunc("GET "+routepath.APISummary, h.handleAPISummary)
	mux.HandleFunc("GET "+routepath.APIProportions, h.handleAPIProportions)
	mux.HandleFunc("GET "+routepath.APICorrelation, h.handleAPICorrelation)
	mux.HandleFunc("GET "+routepath.Health, handleHealth)
	mux.Handle("GET "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	printer, tag, explicit := h.localize(w, r)
	ctx := withLocalizer(r.Context(), printer)
	sel := parseSelection(r.URL.Query(), h.data)

	results, err := h.bindings.Dispatch(ctx, "", sel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	regions := make(map[string]templates.ChartView, len(results))
	for _, result := range results {
		regions[result.Output] = result.Value
	}

	lang := ""
	if explicit {
		lang = tag.String()
	}
	view := templates.PageView{
		Lang:          tag.String(),
		Title:         printer.Sprintf("core.app.title"),
		Summary:       printer.Sprintf("dashboard.summary", len(h.data.Records), len(h.data.Sites)),
		LanguageLabel: printer.Sprintf("core.language.label"),
		Languages:     h.languageOptions(r, printer, tag.String()),
		Controls:      h.controlsView(printer, sel, lang),
		Proportion:    regions[templates.ProportionChartID],
		Correlation:   regions[templates.CorrelationChartID],
	}
	h.render(w, r, templates.Page(view))
}

// handleCharts recomputes the chart regions bound to the control named by
// HX-Trigger and returns them as out-of-band swaps.
func (h *handler) handleCharts(w http.ResponseWriter, r *http.Request) {
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.WithQuery(routepath.Root, r.URL.Query()))
		return
	}
	printer, _, _ := h.localize(w, r)
	ctx := withLocalizer(r.Context(), printer)
	sel := parseSelection(r.URL.Query(), h.data)

	results, err := h.bindings.Dispatch(ctx, httpx.TriggerID(r), sel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	views := make([]templates.ChartView, 0, len(results))
	for _, result := range results {
		views = append(views, result.Value)
	}
	w.Header().Set("Vary", "HX-Request, HX-Trigger")
	h.render(w, r, templates.OutOfBand(views))
}

func (h *handler) handleChartFragment(recompute binding.RecomputeFunc[templates.ChartView]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		printer, _, _ := h.localize(w, r)
		ctx := withLocalizer(r.Context(), printer)
		view, err := recompute(ctx, parseSelection(r.URL.Query(), h.data))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.render(w, r, templates.Chart(view, false))
	}
}

// handleNotFound catches every request no GET route matched. Known paths
// reached with another method answer 405.
func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if isGetRoute(r.URL.Path) {
		w.Header().Set("Allow", "GET, HEAD")
		h.writeError(w, r, apperrors.EK(apperrors.KindMethodNotAllowed, "core.error.method_not_allowed", "method not allowed"))
		return
	}
	h.writeError(w, r, apperrors.EK(apperrors.KindNotFound, "core.error.not_found", "page not found"))
}

func isGetRoute(path string) bool {
	switch path {
	case routepath.Root, routepath.Charts, routepath.ChartProportion, routepath.ChartCorrelation,
		routepath.APISummary, routepath.APIProportions, routepath.APICorrelation, routepath.Health:
		return true
	}
	return strings.HasPrefix(path, routepath.StaticPrefix)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (h *handler) localize(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag, bool) {
	tag, explicit := i18n.ResolveTag(r)
	if explicit {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag, explicit
}

func (h *handler) controlsView(loc i18n.Localizer, sel launch.Selection, lang string) templates.ControlsView {
	sites := make([]templates.SiteOption, 0, len(h.data.Sites)+1)
	sites = append(sites, templates.SiteOption{
		Value:    launch.AllSites,
		Label:    loc.Sprintf("dashboard.site.all"),
		Selected: sel.AllSitesSelected(),
	})
	known := sel.AllSitesSelected()
	for _, site := range h.data.Sites {
		selected := site == sel.Site
		known = known || selected
		sites = append(sites, templates.SiteOption{Value: site, Label: site, Selected: selected})
	}
	// A site missing from the data stays selected so the dropdown agrees
	// with the empty charts.
	if !known {
		sites = append(sites, templates.SiteOption{
			Value:    sel.Site,
			Label:    loc.Sprintf("dashboard.site.unknown", sel.Site),
			Selected: true,
		})
	}
	return templates.ControlsView{
		ChartsURL:    routepath.Charts,
		Lang:         lang,
		SiteLabel:    loc.Sprintf("dashboard.site.label"),
		Sites:        sites,
		PayloadLabel: loc.Sprintf("dashboard.payload.label"),
		LowLabel:     loc.Sprintf("dashboard.payload.low"),
		HighLabel:    loc.Sprintf("dashboard.payload.high"),
		Min:          h.data.PayloadMin,
		Max:          h.data.PayloadMax,
		Step:         h.step,
		Low:          finiteOr(sel.Low, h.data.PayloadMin),
		High:         finiteOr(sel.High, h.data.PayloadMax),
		Marks:        payloadMarks(h.data.PayloadMin, h.data.PayloadMax, markEvery),
	}
}

func (h *handler) languageOptions(r *http.Request, loc i18n.Localizer, current string) []templates.LanguageOption {
	supported := i18n.Supported()
	options := make([]templates.LanguageOption, 0, len(supported))
	for _, tag := range supported {
		query := r.URL.Query()
		query.Set(i18n.LangParam, tag.String())
		options = append(options, templates.LanguageOption{
			Tag:    tag.String(),
			Label:  loc.Sprintf("core.language." + tag.String()),
			Href:   routepath.WithQuery(routepath.Root, query),
			Active: tag.String() == current,
		})
	}
	return options
}

// render writes component through templ.Handler, routing render failures to
// writeError.
func (h *handler) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.writeError(w, r, fmt.Errorf("render %s: %w", r.URL.Path, err))
		})
	})).ServeHTTP(w, r)
}

// writeError logs server failures and writes the error as JSON for API
// routes, a localized error page otherwise, or just the message block for
// HTMX requests.
func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("request failed method=%s path=%s request_id=%s err=%v", r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
	}
	if strings.HasPrefix(r.URL.Path, routepath.APIPrefix) {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	printer, tag, _ := h.localize(w, r)
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = "core.error.internal"
	}
	component := templates.ErrorState(tag.String(), printer.Sprintf("core.app.title"), printer.Sprintf(key), httpx.IsHTMXRequest(r))
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(w, r)
}
