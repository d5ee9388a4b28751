package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/louisbranch/launchdash/internal/launch"
)

func loadCSV(ctx context.Context, path string) ([]launch.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()
	return readCSV(ctx, file)
}

func readCSV(ctx context.Context, r io.Reader) ([]launch.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csv has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx, err := newColumnIndex(header)
	if err != nil {
		return nil, err
	}

	records := make([]launch.Record, 0)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", line, err)
		}
		record, err := idx.record(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
