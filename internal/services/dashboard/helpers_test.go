package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/launchdash/internal/dataset"
	"github.com/louisbranch/launchdash/internal/launch"
	"golang.org/x/net/html"
)

func fixtureRecords() []launch.Record {
	return []launch.Record{
		{Site: "CCAFS LC-40", PayloadMass: 0, Outcome: launch.Failure, BoosterCategory: "v1.0"},
		{Site: "CCAFS LC-40", PayloadMass: 0, Outcome: launch.Failure, BoosterCategory: "v1.0"},
		{Site: "CCAFS LC-40", PayloadMass: 525, Outcome: launch.Failure, BoosterCategory: "v1.0"},
		{Site: "CCAFS LC-40", PayloadMass: 500, Outcome: launch.Failure, BoosterCategory: "v1.0"},
		{Site: "VAFB SLC-4E", PayloadMass: 500, Outcome: launch.Failure, BoosterCategory: "v1.1"},
		{Site: "KSC LC-39A", PayloadMass: 2490, Outcome: launch.Success, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", PayloadMass: 5600, Outcome: launch.Failure, BoosterCategory: "FT"},
		{Site: "CCAFS SLC-40", PayloadMass: 3600, Outcome: launch.Success, BoosterCategory: "FT"},
		{Site: "VAFB SLC-4E", PayloadMass: 9600, Outcome: launch.Success, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", PayloadMass: 3136, Outcome: launch.Success, BoosterCategory: "B4"},
		{Site: "CCAFS SLC-40", PayloadMass: 4230, Outcome: launch.Success, BoosterCategory: "B5"},
		{Site: "CCAFS SLC-40", PayloadMass: 9600, Outcome: launch.Success, BoosterCategory: "B5"},
	}
}

func newTestHandler(t *testing.T, records []launch.Record) http.Handler {
	t.Helper()
	h, err := NewHandler(Config{Dataset: dataset.New(records), PayloadStep: 1000})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func serve(t *testing.T, h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func htmxHeaders(trigger string) map[string]string {
	headers := map[string]string{"HX-Request": "true"}
	if trigger != "" {
		headers["HX-Trigger"] = trigger
	}
	return headers
}

func parseHTML(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func mustFind(t *testing.T, doc *html.Node, id string) *html.Node {
	t.Helper()
	n := findByID(doc, id)
	if n == nil {
		t.Fatalf("element #%s not found", id)
	}
	return n
}

func chartTitle(t *testing.T, section *html.Node) string {
	t.Helper()
	headings := findAll(section, "h2")
	if len(headings) != 1 {
		t.Fatalf("section #%s has %d headings, want 1", attr(section, "id"), len(headings))
	}
	return textContent(headings[0])
}
