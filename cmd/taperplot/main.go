// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Taperplot renders comparison charts from an ORB feature-detector
// benchmark spreadsheet.
//
// It reads a table of preset measurements, splits it into the Harris
// and FAST sweeps, and writes one PNG per metric/axis combination
// into the graphs directory. Charts carrying a taper threshold are
// annotated with the point where extra features stop paying for
// their compute cost.
//
// Usage:
//
//	taperplot [-input file.xlsx] [-graphs dir] [-dpi n] [-taper=false] [-summary=false]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sachin541/Orb-new/benchchart"
	"github.com/sachin541/Orb-new/benchtab"
)

var exit = os.Exit // replaced during testing

// defaultCharts is the full chart set, covering both the plain
// sweep charts and the taper-annotated ones.
var defaultCharts = []benchchart.Chart{
	{
		Metric:   benchtab.ColAvgMS,
		YLabel:   "avg_ms (detectAndCompute)",
		Filename: "time_vs_nfeatures.png",
	},
	{
		Metric:         benchtab.ColGridOccupancy,
		YLabel:         "Grid occupancy (%)",
		Filename:       "grid_occupancy_vs_features.png",
		TaperThreshold: 0.05,
	},
	{
		Metric:         benchtab.ColGridOccupancy,
		YLabel:         "Grid occupancy (%)",
		Filename:       "grid_occupancy_vs_time.png",
		UseCostX:       true,
		TaperThreshold: 0.05,
	},
	{
		Metric:         benchtab.ColDescriptorDensity,
		YLabel:         "Descriptor density (features per occupied cell)",
		Filename:       "density_vs_features.png",
		TaperThreshold: 0.2,
	},
	{
		Metric:         benchtab.ColDescriptorDensity,
		YLabel:         "Descriptor density (features per occupied cell)",
		Filename:       "density_vs_time.png",
		UseCostX:       true,
		TaperThreshold: 0.2,
	},
}

// chartSet returns the charts to render. With taper disabled the set
// reproduces the plain sweep charts: thresholds are cleared so no
// annotation is drawn.
func chartSet(withTaper bool) []benchchart.Chart {
	charts := make([]benchchart.Chart, len(defaultCharts))
	copy(charts, defaultCharts)
	if !withTaper {
		for i := range charts {
			charts[i].TaperThreshold = 0
		}
	}
	return charts
}

func main() {
	log.SetPrefix("taperplot: ")
	log.SetFlags(0)

	input := flag.String("input", "benchmarks/orb_benchmark1.xlsx", "benchmark spreadsheet to read (.xlsx or CSV)")
	graphs := flag.String("graphs", "graphs", "directory to write PNG charts into")
	dpi := flag.Int("dpi", 200, "output resolution")
	withTaper := flag.Bool("taper", true, "annotate charts with detected taper points")
	summary := flag.Bool("summary", true, "print per-sweep avg_ms summaries")
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		exit(2)
	}

	fmt.Println("Reading:", *input)
	fmt.Println("Saving graphs to:", *graphs)

	tab, err := benchtab.ReadTable(*input)
	if err != nil {
		log.Print(err)
		exit(1)
		return
	}
	part := tab.Split()
	if part.Skipped > 0 {
		fmt.Printf("skipped %d rows matching neither %q nor %q preset\n",
			part.Skipped, "harris_", "fast_")
	}

	if *summary {
		for _, sub := range []benchtab.Subset{part.Harris, part.Fast} {
			s, err := sub.Summarize(benchtab.ColAvgMS)
			if err != nil {
				log.Print(err)
				continue
			}
			fmt.Printf("%s avg_ms: %s (%d presets)\n", sub.Label, s, sub.Len())
		}
	}

	cfg := benchchart.Config{Dir: *graphs, DPI: *dpi}
	for _, ch := range chartSet(*withTaper) {
		path, err := benchchart.Render(cfg, part.Harris, part.Fast, ch)
		if err != nil {
			log.Print(err)
			exit(1)
			return
		}
		fmt.Println("Saved:", path)
	}
}
