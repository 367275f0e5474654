// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/sachin541/Orb-new/benchtab"
)

func TestChartSet(t *testing.T) {
	charts := chartSet(true)
	if len(charts) != 5 {
		t.Fatalf("chartSet(true) has %d charts, want 5", len(charts))
	}

	names := make(map[string]bool)
	for _, ch := range charts {
		if names[ch.Filename] {
			t.Errorf("duplicate filename %q", ch.Filename)
		}
		names[ch.Filename] = true
	}
	for _, want := range []string{
		"time_vs_nfeatures.png",
		"grid_occupancy_vs_features.png",
		"grid_occupancy_vs_time.png",
		"density_vs_features.png",
		"density_vs_time.png",
	} {
		if !names[want] {
			t.Errorf("chart set missing %q", want)
		}
	}

	// The raw timing chart never carries a taper rule; it plots the
	// cost column itself.
	if charts[0].Metric != benchtab.ColAvgMS || charts[0].TaperThreshold != 0 {
		t.Errorf("timing chart = %+v, want avg_ms metric with no taper", charts[0])
	}
}

func TestChartSetTaperDisabled(t *testing.T) {
	for _, ch := range chartSet(false) {
		if ch.TaperThreshold != 0 {
			t.Errorf("%s: taper threshold %v with taper disabled", ch.Filename, ch.TaperThreshold)
		}
	}
	// Disabling taper must not clobber the package default set.
	for _, ch := range chartSet(true)[1:] {
		if ch.TaperThreshold == 0 {
			t.Errorf("%s: lost its taper threshold", ch.Filename)
		}
	}
}
