// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab loads tables of ORB feature-detector benchmark
// measurements and partitions them into per-detector sweeps.
//
// A benchmark table is a spreadsheet with one row per preset. Each
// preset names a detector scoring mode and an nfeatures cap (for
// example "harris_500"), and carries the measured cost and quality
// metrics for that configuration. A Table is loaded once and never
// mutated; everything downstream works on filtered, sorted Subset
// views of it.
package benchtab

import (
	"fmt"
	"sort"
	"strings"
)

// Column names required in a benchmark table.
const (
	ColPreset            = "preset"
	ColFeatures          = "features"
	ColAvgMS             = "avg_ms"
	ColGridOccupancy     = "grid_occupancy_percent"
	ColDescriptorDensity = "descriptor_density_per_occupied_cell"
)

// requiredCols lists every column ReadTable must find in the header.
var requiredCols = []string{
	ColPreset,
	ColFeatures,
	ColAvgMS,
	ColGridOccupancy,
	ColDescriptorDensity,
}

// Preset prefixes that assign a row to a detector sweep.
const (
	harrisPrefix = "harris_"
	fastPrefix   = "fast_"
)

// Legend labels for the two sweeps, in their fixed presentation order.
const (
	HarrisLabel = "HARRIS_SCORE"
	FastLabel   = "FAST_SCORE"
)

// A Row is one benchmark measurement.
type Row struct {
	// Preset names the detector configuration, e.g. "harris_500".
	Preset string

	// Features is the nfeatures cap the preset was run with.
	Features int

	// AvgMS is the mean detectAndCompute time in milliseconds.
	AvgMS float64

	// GridOccupancy is the percentage of spatial grid cells that
	// contain at least one detected feature.
	GridOccupancy float64

	// DescriptorDensity is the mean descriptor count per occupied
	// grid cell.
	DescriptorDensity float64
}

// metric returns the value of the named float column.
func (r Row) metric(col string) (float64, bool) {
	switch col {
	case ColAvgMS:
		return r.AvgMS, true
	case ColGridOccupancy:
		return r.GridOccupancy, true
	case ColDescriptorDensity:
		return r.DescriptorDensity, true
	}
	return 0, false
}

// A Table is a loaded benchmark table. It is immutable after
// ReadTable returns.
type Table struct {
	// Path is the file the table was read from. Diagnostic only.
	Path string

	Rows []Row
}

// A Subset is a filtered view of a Table holding one detector's
// sweep, ordered ascending by the nfeatures cap.
type Subset struct {
	// Label is the legend label for this sweep.
	Label string

	Rows []Row
}

// A Partition is the result of splitting a Table by preset prefix.
type Partition struct {
	Harris Subset
	Fast   Subset

	// Skipped counts rows whose preset matched neither prefix.
	// They belong to no subset; callers should report them rather
	// than let them vanish.
	Skipped int
}

// Split partitions the table into the Harris and FAST sweeps by
// preset prefix. Each subset is sorted ascending by Features; rows
// with equal Features keep their file order.
func (t *Table) Split() Partition {
	var p Partition
	p.Harris.Label = HarrisLabel
	p.Fast.Label = FastLabel
	for _, r := range t.Rows {
		switch {
		case strings.HasPrefix(r.Preset, harrisPrefix):
			p.Harris.Rows = append(p.Harris.Rows, r)
		case strings.HasPrefix(r.Preset, fastPrefix):
			p.Fast.Rows = append(p.Fast.Rows, r)
		default:
			p.Skipped++
		}
	}
	sortByFeatures(p.Harris.Rows)
	sortByFeatures(p.Fast.Rows)
	return p
}

func sortByFeatures(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Features < rows[j].Features
	})
}

// Len returns the number of rows in the subset.
func (s Subset) Len() int { return len(s.Rows) }

// Sweep returns the nfeatures caps of the subset, as floats for
// plotting.
func (s Subset) Sweep() []float64 {
	xs := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		xs[i] = float64(r.Features)
	}
	return xs
}

// Costs returns the avg_ms column of the subset.
func (s Subset) Costs() []float64 {
	xs := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		xs[i] = r.AvgMS
	}
	return xs
}

// Metric returns the named float column of the subset. The column
// must be one of ColAvgMS, ColGridOccupancy, or ColDescriptorDensity.
func (s Subset) Metric(col string) ([]float64, error) {
	if _, ok := (Row{}).metric(col); !ok {
		return nil, fmt.Errorf("unknown metric column %q", col)
	}
	xs := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		v, _ := r.metric(col)
		xs[i] = v
	}
	return xs, nil
}
