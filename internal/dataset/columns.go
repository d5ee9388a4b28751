package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/launchdash/internal/launch"
)

// columnIndex maps the required columns to their positions in a header row.
type columnIndex struct {
	site    int
	payload int
	outcome int
	booster int
}

func newColumnIndex(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}
	lookup := func(name string) (int, error) {
		pos, ok := positions[name]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		return pos, nil
	}

	var (
		idx columnIndex
		err error
	)
	if idx.site, err = lookup(ColumnSite); err != nil {
		return columnIndex{}, err
	}
	if idx.payload, err = lookup(ColumnPayloadMass); err != nil {
		return columnIndex{}, err
	}
	if idx.outcome, err = lookup(ColumnOutcome); err != nil {
		return columnIndex{}, err
	}
	if idx.booster, err = lookup(ColumnBoosterCategory); err != nil {
		return columnIndex{}, err
	}
	return idx, nil
}

// record converts one row. line is the 1-based source row used in errors.
func (idx columnIndex) record(row []string, line int) (launch.Record, error) {
	cell := func(pos int) string {
		if pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	payload, err := strconv.ParseFloat(cell(idx.payload), 64)
	if err != nil {
		return launch.Record{}, fmt.Errorf("row %d: parse %s: %w", line, ColumnPayloadMass, err)
	}
	outcome, err := parseOutcome(cell(idx.outcome))
	if err != nil {
		return launch.Record{}, fmt.Errorf("row %d: parse %s: %w", line, ColumnOutcome, err)
	}
	return launch.Record{
		Site:            cell(idx.site),
		PayloadMass:     payload,
		Outcome:         outcome,
		BoosterCategory: cell(idx.booster),
	}, nil
}

func parseOutcome(raw string) (launch.Outcome, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return launch.Failure, err
	}
	switch value {
	case 1:
		return launch.Success, nil
	case 0:
		return launch.Failure, nil
	default:
		return launch.Failure, fmt.Errorf("outcome must be 0 or 1, got %q", raw)
	}
}
