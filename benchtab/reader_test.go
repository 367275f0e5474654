// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0666))
	return path
}

func TestReadTableCSV(t *testing.T) {
	// Columns out of order, plus an extra one the loader must skip.
	path := writeCSV(t, "bench.csv", `features,preset,notes,avg_ms,grid_occupancy_percent,descriptor_density_per_occupied_cell
100,harris_100,warmup,10.0,40.0,5.0
200,harris_200,,18.0,55.0,5.2
100,fast_100,,8.0,45.0,4.8
`)
	tab, err := ReadTable(path)
	require.NoError(t, err)
	require.Equal(t, path, tab.Path)
	require.Len(t, tab.Rows, 3)
	require.Equal(t, Row{Preset: "harris_100", Features: 100, AvgMS: 10, GridOccupancy: 40, DescriptorDensity: 5}, tab.Rows[0])
	require.Equal(t, "fast_100", tab.Rows[2].Preset)
}

func TestReadTableXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"preset", "features", "avg_ms", "grid_occupancy_percent", "descriptor_density_per_occupied_cell"},
		{"harris_100", 100, 10.0, 40.0, 5.0},
		{"harris_200", 200, 18.0, 55.0, 5.2},
		{"fast_100", 100, 8.0, 45.0, 4.8},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tab, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, tab.Rows, 3)
	require.Equal(t, Row{Preset: "harris_200", Features: 200, AvgMS: 18, GridOccupancy: 55, DescriptorDensity: 5.2}, tab.Rows[1])
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	_, err = ReadTable(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}

func TestReadTableMissingColumn(t *testing.T) {
	path := writeCSV(t, "bench.csv", `preset,features,avg_ms
harris_100,100,10.0
`)
	_, err := ReadTable(path)
	var mce *MissingColumnError
	require.ErrorAs(t, err, &mce)
	require.Equal(t, ColGridOccupancy, mce.Column)
	require.Equal(t, path, mce.Path)
}

func TestReadTableEmpty(t *testing.T) {
	path := writeCSV(t, "bench.csv", "")
	_, err := ReadTable(path)
	var mce *MissingColumnError
	require.ErrorAs(t, err, &mce)
}

func TestReadTableBadCell(t *testing.T) {
	path := writeCSV(t, "bench.csv", `preset,features,avg_ms,grid_occupancy_percent,descriptor_density_per_occupied_cell
harris_100,100,10.0,40.0,5.0
harris_200,200,fast,55.0,5.2
`)
	_, err := ReadTable(path)
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, 3, ve.Line)
	require.Equal(t, ColAvgMS, ve.Column)
}

func TestReadTableIntegralFeatures(t *testing.T) {
	// Spreadsheet exports often float-format the sweep column.
	path := writeCSV(t, "bench.csv", `preset,features,avg_ms,grid_occupancy_percent,descriptor_density_per_occupied_cell
harris_100,100.0,10.0,40.0,5.0
`)
	tab, err := ReadTable(path)
	require.NoError(t, err)
	require.Equal(t, 100, tab.Rows[0].Features)
}

func TestReadTableShortRow(t *testing.T) {
	// A padded-short trailing row reads as an empty cell, which is
	// a value error rather than silent data loss.
	path := writeCSV(t, "bench.csv", `preset,features,avg_ms,grid_occupancy_percent,descriptor_density_per_occupied_cell
harris_100,100,10.0,40.0
`)
	_, err := ReadTable(path)
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, ColDescriptorDensity, ve.Column)
}
