package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/scdna/probemisc/experiment"
	"gonum.org/v1/gonum/mat"
)

func init() {
	// Emit tab-delimited output to match the manifest format
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = '\t'
		return gocsv.NewSafeCSVWriter(w)
	})
}

// writeTables writes one annotated manifest and one count matrix per
// resulting table, named <prefix>.<table>.probes.tsv and
// <prefix>.<table>.counts.tsv.
func writeTables(prefix string, ex *experiment.Experiment) error {
	if err := writeTable(prefix, string(experiment.CNV), ex.Probes, ex.Counts, ex.Cells); err != nil {
		return err
	}

	for _, name := range experiment.CategoryNames {
		sub, exists := ex.Aux[name]
		if !exists {
			continue
		}
		if err := writeTable(prefix, name, sub.Probes, sub.Counts, ex.Cells); err != nil {
			return err
		}
	}

	return nil
}

func writeTable(prefix, name string, probes []experiment.Annotation, counts *mat.Dense, cells []string) error {
	pf, err := os.Create(fmt.Sprintf("%s.%s.probes.tsv", prefix, name))
	if err != nil {
		return err
	}
	defer pf.Close()

	if err := gocsv.MarshalFile(&probes, pf); err != nil {
		return err
	}

	if counts == nil {
		return nil
	}

	cf, err := os.Create(fmt.Sprintf("%s.%s.counts.tsv", prefix, name))
	if err != nil {
		return err
	}
	defer cf.Close()

	w := csv.NewWriter(cf)
	w.Comma = '\t'
	defer w.Flush()

	header := append([]string{"probe.id"}, cells...)
	if err := w.Write(header); err != nil {
		return err
	}

	rows, ncols := counts.Dims()
	for i := 0; i < rows; i++ {
		rec := make([]string, 0, ncols+1)
		rec = append(rec, probes[i].ID)
		for j := 0; j < ncols; j++ {
			rec = append(rec, strconv.FormatFloat(counts.At(i, j), 'g', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return w.Error()
}
