package experiment

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"
)

// Partition splits the primary table by category: rows in the CNV
// reference category stay primary, and every other category present
// becomes an auxiliary sub-table named after its category tag. Row order
// within each resulting table is the induced sub-order of the original
// ordering, and the cell axis is shared untouched by every table.
//
// The returned bool reports whether any rows actually moved. When every
// probe is CNV the original container is returned unchanged, so callers
// can tell a no-op from a real partition.
func Partition(ex *Experiment, categories map[string]Category) (*Experiment, bool, error) {
	rowsByCategory := make(map[Category][]int)
	idsByCategory := make(map[Category][]string)

	for i, p := range ex.Probes {
		cat, exists := categories[p.ID]
		if !exists {
			return nil, false, fmt.Errorf("partition: probe %q has no category", p.ID)
		}
		rowsByCategory[cat] = append(rowsByCategory[cat], i)
		idsByCategory[cat] = append(idsByCategory[cat], p.ID)
	}

	if len(rowsByCategory[CNV]) == len(ex.Probes) {
		log.Printf("partition: all %d probes are %s; leaving the container unchanged", len(ex.Probes), CNV)
		return ex, false, nil
	}

	out := &Experiment{
		Counts:    subsetRows(ex.Counts, rowsByCategory[CNV]),
		Probes:    subsetProbes(ex.Probes, rowsByCategory[CNV]),
		Cells:     ex.Cells,
		Aux:       make(map[string]*SubTable, len(rowsByCategory)),
		ArmLevels: ex.ArmLevels,
	}
	for name, sub := range ex.Aux {
		out.Aux[name] = sub
	}

	for _, name := range CategoryNames {
		cat := Category(name)
		rows := rowsByCategory[cat]
		if len(rows) == 0 {
			continue
		}

		out.Aux[name] = &SubTable{
			Counts: subsetRows(ex.Counts, rows),
			Probes: subsetProbes(ex.Probes, rows),
		}
		log.Printf("partition: moving %d probes to %s: %v", len(rows), name, idsByCategory[cat])
	}

	return out, true, nil
}

func subsetRows(m *mat.Dense, rows []int) *mat.Dense {
	// mat.NewDense panics on a zero dimension; a table with no rows
	// carries a nil matrix instead.
	if len(rows) == 0 {
		return nil
	}

	_, cols := m.Dims()
	out := mat.NewDense(len(rows), cols, nil)
	for i, row := range rows {
		out.SetRow(i, mat.Row(nil, row, m))
	}

	return out
}

func subsetProbes(probes []Annotation, rows []int) []Annotation {
	out := make([]Annotation, len(rows))
	for i, row := range rows {
		out[i] = probes[row]
	}

	return out
}
