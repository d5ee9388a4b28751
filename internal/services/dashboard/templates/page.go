package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/launchdash/internal/services/dashboard/routepath"
)

// HTMXScript is the HTMX build the page loads.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Href   string
	Active bool
}

// PageView is everything the full dashboard page renders.
type PageView struct {
	Lang          string
	Title         string
	Summary       string
	LanguageLabel string
	Languages     []LanguageOption
	Controls      ControlsView
	Proportion    ChartView
	Correlation   ChartView
}

// Page renders the full dashboard document.
func Page(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<!doctype html>\n<html")
		hw.attr("lang", view.Lang)
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.text(view.Title)
		hw.raw("</title>")
		hw.raw(`<link rel="stylesheet"`)
		hw.attr("href", routepath.StaticStylesheet)
		hw.raw(`><script`)
		hw.attr("src", HTMXScript)
		hw.raw(`></script><script defer`)
		hw.attr("src", routepath.StaticScript)
		hw.raw(`></script></head><body><main class="dashboard"><header class="dashboard-header"><h1>`)
		hw.text(view.Title)
		hw.raw(`</h1><p class="dashboard-summary">`)
		hw.text(view.Summary)
		hw.raw(`</p>`)
		writeLanguages(hw, view.LanguageLabel, view.Languages)
		hw.raw(`</header>`)
		if hw.err != nil {
			return hw.err
		}

		if err := Controls(view.Controls).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`<div class="chart-row">`)
		if hw.err != nil {
			return hw.err
		}
		if err := Chart(view.Proportion, false).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</div><div class="chart-row">`)
		if hw.err != nil {
			return hw.err
		}
		if err := Chart(view.Correlation, false).Render(ctx, w); err != nil {
			return err
		}
		hw.raw("</div></main></body></html>\n")
		return hw.err
	})
}

func writeLanguages(hw *htmlWriter, label string, languages []LanguageOption) {
	if len(languages) == 0 {
		return
	}
	hw.raw(`<nav class="language-switcher"`)
	hw.attr("aria-label", label)
	hw.raw(`><ul>`)
	for _, option := range languages {
		hw.raw(`<li><a`)
		hw.attr("href", option.Href)
		hw.attr("hreflang", option.Tag)
		if option.Active {
			hw.raw(` aria-current="true"`)
		}
		hw.raw(">")
		hw.text(option.Label)
		hw.raw("</a></li>")
	}
	hw.raw("</ul></nav>")
}

// ErrorState renders a standalone error document, or just the message
// block for HTMX requests.
func ErrorState(lang, title, message string, fragment bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		if !fragment {
			hw.raw("<!doctype html>\n<html")
			hw.attr("lang", lang)
			hw.raw(`><head><meta charset="utf-8"><title>`)
			hw.text(title)
			hw.raw(`</title><link rel="stylesheet"`)
			hw.attr("href", routepath.StaticStylesheet)
			hw.raw(`></head><body><main class="dashboard">`)
		}
		hw.raw(`<p class="dashboard-error" role="alert">`)
		hw.text(message)
		hw.raw("</p>")
		if !fragment {
			hw.raw("</main></body></html>\n")
		}
		return hw.err
	})
}
