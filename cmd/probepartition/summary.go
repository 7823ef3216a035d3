package main

import (
	"log"

	"github.com/montanaflynn/stats"
	"github.com/scdna/probemisc/experiment"
	"gonum.org/v1/gonum/mat"
)

// summarize logs per-table probe counts and descriptive statistics of
// the per-probe total counts. Purely informational.
func summarize(ex *experiment.Experiment) {
	logTable(string(experiment.CNV), ex.Counts, len(ex.Probes))
	for _, name := range experiment.CategoryNames {
		if sub, exists := ex.Aux[name]; exists {
			logTable(name, sub.Counts, len(sub.Probes))
		}
	}
}

func logTable(name string, counts *mat.Dense, probes int) {
	if counts == nil {
		log.Printf("%s: %d probes", name, probes)
		return
	}

	rows, _ := counts.Dims()
	totals := make([]float64, rows)
	for i := 0; i < rows; i++ {
		totals[i] = mat.Sum(counts.RowView(i))
	}

	mean, err := stats.Mean(totals)
	if err != nil {
		log.Printf("%s: %d probes", name, probes)
		return
	}
	median, _ := stats.Median(totals)

	log.Printf("%s: %d probes, mean total count %.1f, median %.1f", name, probes, mean, median)
}
