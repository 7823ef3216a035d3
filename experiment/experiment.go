// Package experiment holds the in-memory container for one single-cell
// targeted-sequencing run: a probe-by-cell count matrix with row (probe)
// and column (cell) metadata, plus named auxiliary sub-tables split off
// from the primary probe set.
package experiment

import (
	"fmt"

	"github.com/scdna/probemisc"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/guregu/null.v3"
)

// Annotation is the row metadata for one probe. Cytoband and Arm are
// derived by Annotate and are null when no reference band overlaps the
// probe's interval.
type Annotation struct {
	probemisc.Probe
	Cytoband null.String `csv:"cytoband"`
	Arm      null.String `csv:"arm"`
}

// SubTable is an auxiliary probe table carved out of the primary one.
// It shares the parent experiment's cell axis.
type SubTable struct {
	Counts *mat.Dense
	Probes []Annotation
}

// Experiment is the container for one run. Counts is probes x cells,
// row-aligned with Probes and column-aligned with Cells. Aux holds the
// sub-tables produced by Partition, keyed by category name; every
// sub-table shares Cells with the primary table. ArmLevels is the level
// set of the categorical arm column, in first-encountered row order.
type Experiment struct {
	Counts    *mat.Dense
	Probes    []Annotation
	Cells     []string
	Aux       map[string]*SubTable
	ArmLevels []string
}

// New builds an experiment from a count matrix and its row/column
// metadata, validating that the three agree on shape and that probe ids
// are unique.
func New(counts *mat.Dense, probes []Annotation, cells []string) (*Experiment, error) {
	r, c := counts.Dims()
	if r != len(probes) {
		return nil, fmt.Errorf("experiment: %d count rows but %d probes", r, len(probes))
	}
	if c != len(cells) {
		return nil, fmt.Errorf("experiment: %d count columns but %d cells", c, len(cells))
	}

	seen := make(map[string]struct{}, len(probes))
	for _, p := range probes {
		if _, exists := seen[p.ID]; exists {
			return nil, fmt.Errorf("experiment: duplicate probe.id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &Experiment{
		Counts: counts,
		Probes: probes,
		Cells:  cells,
		Aux:    make(map[string]*SubTable),
	}, nil
}

// UnionProbes is the explicit merged view over the primary table and
// every auxiliary sub-table: primary rows first in their stored order,
// then each sub-table's rows, so that the union reproduces the full
// original probe set after a Partition.
func (ex *Experiment) UnionProbes() []Annotation {
	out := make([]Annotation, 0, len(ex.Probes))
	out = append(out, ex.Probes...)
	for _, name := range CategoryNames {
		if sub, exists := ex.Aux[name]; exists {
			out = append(out, sub.Probes...)
		}
	}

	return out
}
