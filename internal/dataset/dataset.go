// Package dataset loads the launch record collection once at startup and
// derives the summary values the dashboard exposes as fixed configuration.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/launchdash/internal/launch"
)

// Column names the loader requires in the source header.
const (
	ColumnSite            = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnOutcome         = "class"
	ColumnBoosterCategory = "Booster Version Category"
)

// DefaultTable is the SQLite table read when Source.Table is empty.
const DefaultTable = "spacex_launches"

// ErrMissingColumn reports a source without one of the required columns.
var ErrMissingColumn = errors.New("missing required column")

// LoadError is returned for any failure to produce a Dataset from a source.
type LoadError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load dataset %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Source identifies tabular launch data on disk.
type Source struct {
	// Path is a CSV file, or a SQLite database when it ends in .db, .sqlite
	// or .sqlite3.
	Path string
	// Table names the SQLite table to read. Ignored for CSV.
	Table string
}

// IsSQLite reports whether the source path selects the SQLite reader.
func (s Source) IsSQLite() bool {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(s.Path))) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}

// Dataset is the immutable, fully loaded record collection.
type Dataset struct {
	Records    []launch.Record
	PayloadMin float64
	PayloadMax float64
	// Sites lists distinct launch sites in first-appearance order.
	Sites []string
}

// New summarizes records into a Dataset. An empty collection has zero
// payload bounds.
func New(records []launch.Record) *Dataset {
	ds := &Dataset{Records: records, Sites: make([]string, 0)}
	seen := make(map[string]struct{})
	for i, record := range records {
		if i == 0 || record.PayloadMass < ds.PayloadMin {
			ds.PayloadMin = record.PayloadMass
		}
		if i == 0 || record.PayloadMass > ds.PayloadMax {
			ds.PayloadMax = record.PayloadMass
		}
		if _, ok := seen[record.Site]; ok {
			continue
		}
		seen[record.Site] = struct{}{}
		ds.Sites = append(ds.Sites, record.Site)
	}
	return ds
}

// DefaultSelection returns the initial dashboard state: every site and the
// full payload range.
func (d *Dataset) DefaultSelection() launch.Selection {
	if d == nil {
		return launch.Selection{Site: launch.AllSites}
	}
	return launch.Selection{Site: launch.AllSites, Low: d.PayloadMin, High: d.PayloadMax}
}

// Load reads every record from src.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	path := strings.TrimSpace(src.Path)
	if path == "" {
		return nil, &LoadError{Path: path, Err: errors.New("data path is required")}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		records []launch.Record
		err     error
	)
	if src.IsSQLite() {
		records, err = loadSQLite(ctx, path, src.Table)
	} else {
		records, err = loadCSV(ctx, path)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return New(records), nil
}
