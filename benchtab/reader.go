// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// A MissingColumnError reports a benchmark table whose header lacks a
// required column.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Path, e.Column)
}

// A ValueError reports a cell that could not be parsed as a number.
type ValueError struct {
	Path   string
	Line   int // 1-based, header is line 1
	Column string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: %v", e.Path, e.Line, e.Column, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// ReadTable reads a benchmark table from path. The format is chosen
// by extension: ".xlsx" is read as an Excel workbook (first sheet),
// anything else as CSV. The first row must be a header containing at
// least the required columns; extra columns are ignored and column
// order is free.
func ReadTable(path string) (*Table, error) {
	var cells [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		cells, err = readXLSX(path)
	} else {
		cells, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	return parseTable(path, cells)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	// Sheets exported from other tools sometimes pad short rows.
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return recs, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// parseTable turns header+data cells into a Table.
func parseTable(path string, cells [][]string) (*Table, error) {
	if len(cells) == 0 {
		return nil, &MissingColumnError{Path: path, Column: ColPreset}
	}

	// Map required column names to their header positions.
	pos := make(map[string]int)
	for i, name := range cells[0] {
		pos[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredCols {
		if _, ok := pos[col]; !ok {
			return nil, &MissingColumnError{Path: path, Column: col}
		}
	}

	cell := func(rec []string, col string) string {
		i := pos[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	t := &Table{Path: path, Rows: make([]Row, 0, len(cells)-1)}
	for n, rec := range cells[1:] {
		line := n + 2
		var row Row
		row.Preset = cell(rec, ColPreset)

		// The sweep parameter is integral, but spreadsheet tools
		// love to render it as "500.0".
		fv, err := parseNumber(cell(rec, ColFeatures))
		if err != nil {
			return nil, &ValueError{path, line, ColFeatures, err}
		}
		row.Features = int(fv)

		for _, c := range []struct {
			col string
			dst *float64
		}{
			{ColAvgMS, &row.AvgMS},
			{ColGridOccupancy, &row.GridOccupancy},
			{ColDescriptorDensity, &row.DescriptorDensity},
		} {
			v, err := parseNumber(cell(rec, c.col))
			if err != nil {
				return nil, &ValueError{path, line, c.col, err}
			}
			*c.dst = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseFloat(s, 64)
}
