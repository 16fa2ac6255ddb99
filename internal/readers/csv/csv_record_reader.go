package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	readers "github.com/f2fin/directory-dashboard/internal/readers"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrUnknownColumn = errors.New("unknown column")
)

// CSVRecordReader reads rows whose header names a subset of Columns, in any
// order. Header matching ignores case and surrounding space.
type CSVRecordReader struct {
	Columns []readers.Column
}

func NewLenderReader() *CSVRecordReader {
	return &CSVRecordReader{Columns: readers.LenderColumns}
}

func NewBankerDirectoryReader() *CSVRecordReader {
	return &CSVRecordReader{Columns: readers.BankerDirectoryColumns}
}

func (c *CSVRecordReader) ReadRecords(reader io.Reader) ([]readers.Record, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return []readers.Record{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	positions, err := c.mapHeader(header)
	if err != nil {
		return nil, err
	}

	records := []readers.Record{}
	rowNum := 1
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d: invalid length: expected %d, got %d", rowNum, len(header), len(row))
		}

		fields := make(map[string]string, len(positions))
		for field, i := range positions {
			fields[field] = strings.TrimSpace(row[i])
		}
		records = append(records, readers.Record{Index: rowNum, Fields: fields})
		rowNum++
	}

	return records, nil
}

func (c *CSVRecordReader) mapHeader(header []string) (map[string]int, error) {
	byHeader := make(map[string]readers.Column, len(c.Columns))
	for _, col := range c.Columns {
		byHeader[strings.ToUpper(col.Header)] = col
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		col, ok := byHeader[strings.ToUpper(strings.TrimSpace(h))]
		if !ok {
			return nil, fmt.Errorf("%w: '%s' at index %d", ErrUnknownColumn, h, i)
		}
		positions[col.Field] = i
	}
	for _, col := range c.Columns {
		if _, ok := positions[col.Field]; col.Required && !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrMissingColumn, col.Header)
		}
	}
	return positions, nil
}
