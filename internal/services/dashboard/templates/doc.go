// Package templates renders the dashboard page and its chart regions as templ
// components.
//
// Components are plain templ.ComponentFunc values. Every dynamic string is
// escaped with templ.EscapeString; only chart SVG produced by the charts
// package is written raw.
package templates
