// Package dashboard serves the launch records dashboard: an HTMX page whose
// charts are recomputed by the binding registry whenever a control changes,
// plus chart fragments and a small JSON API over the same aggregators.
package dashboard
