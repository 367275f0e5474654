// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package taper locates the point in a benchmark sweep where raising
// the sweep parameter stops paying for its cost.
//
// Given a metric series and a cost series over the same sweep, the
// detector computes the marginal metric gain per unit cost between
// consecutive points and reports the first point at which that gain
// stays below a threshold for a sustained run. This is a heuristic,
// not a changepoint test; no significance testing is applied.
package taper

// Defaults used by callers that have no reason to pick their own.
const (
	DefaultMinStep   = 3
	DefaultThreshold = 0.02
)

// epsilon guards the per-step cost divisor against zero and
// near-zero cost deltas.
const epsilon = 1e-9

// Find returns the index of the taper point in a sweep, and whether
// one exists.
//
// metric and cost must be the same length and ordered by the sweep
// parameter. For each consecutive pair of points the gain per unit
// cost is (metric[i+1]-metric[i]) / (cost[i+1]-cost[i]+epsilon).
// Find returns i+1 for the first i at which that gain is strictly
// below threshold for minStep consecutive windows. A negative gain
// counts as below threshold.
//
// A minStep or threshold that is zero or negative falls back to the
// package default.
//
// If the series is too short for any window (fewer than minStep+1
// points) or no qualifying run exists, Find returns 0, false.
func Find(metric, cost []float64, minStep int, threshold float64) (int, bool) {
	if len(metric) != len(cost) {
		panic("taper: metric and cost length mismatch")
	}
	if minStep <= 0 {
		minStep = DefaultMinStep
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if len(metric) < minStep+1 {
		return 0, false
	}

	gain := make([]float64, len(metric)-1)
	for i := range gain {
		dm := metric[i+1] - metric[i]
		dc := cost[i+1] - cost[i]
		gain[i] = dm / (dc + epsilon)
	}

	for i := 0; i+minStep <= len(gain); i++ {
		run := true
		for _, g := range gain[i : i+minStep] {
			if g >= threshold {
				run = false
				break
			}
		}
		if run {
			return i + 1, true
		}
	}
	return 0, false
}
