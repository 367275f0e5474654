// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the distribution of one numeric column of a
// subset.
type Summary struct {
	Min    float64
	Mean   float64
	Median float64
	Max    float64
}

// Summarize computes a Summary of the named column. It fails on an
// unknown column or an empty subset.
func (s Subset) Summarize(col string) (Summary, error) {
	xs, err := s.Metric(col)
	if err != nil {
		return Summary{}, err
	}
	if len(xs) == 0 {
		return Summary{}, fmt.Errorf("%s: no rows to summarize", s.Label)
	}
	sample := stats.Sample{Xs: xs}
	min, max := sample.Bounds()
	return Summary{
		Min:    min,
		Mean:   sample.Mean(),
		Median: sample.Quantile(0.5),
		Max:    max,
	}, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("min %.2f  mean %.2f  median %.2f  max %.2f",
		s.Min, s.Mean, s.Median, s.Max)
}
