package experiment

import (
	"github.com/brentp/irelate/interfaces"
	"github.com/scdna/probemisc/cytoband"
	"gopkg.in/guregu/null.v3"
)

// Annotate fills the cytoband and arm columns of the row metadata from
// the reference banding table of the requested assembly. It returns a
// new container sharing the count matrix and cell axis; row order and
// row count are unchanged, and a probe with no overlapping band keeps
// null in both columns. An unsupported assembly fails before any
// metadata is touched.
func Annotate(ex *Experiment, assembly string) (*Experiment, error) {
	reference, err := cytoband.Table(assembly)
	if err != nil {
		return nil, err
	}

	queries := make([]interfaces.IPosition, len(ex.Probes))
	for i := range ex.Probes {
		queries[i] = ex.Probes[i].Probe
	}

	hits := cytoband.FindOverlaps(queries, reference)

	// Re-key the overlap results by probe id, then re-align them to the
	// container's stored row order. The hits slice is already
	// index-aligned, but rows must never depend on that coincidence.
	byID := make(map[string]*cytoband.Record, len(hits))
	for i := range ex.Probes {
		byID[ex.Probes[i].ID] = hits[i]
	}

	probes := make([]Annotation, len(ex.Probes))
	levels := make([]string, 0)
	seenLevels := make(map[string]struct{})

	for i := range ex.Probes {
		probes[i] = ex.Probes[i]

		hit := byID[probes[i].ID]
		if hit == nil {
			probes[i].Cytoband = null.String{}
			probes[i].Arm = null.String{}
			continue
		}

		arm := hit.Arm()
		probes[i].Cytoband = null.StringFrom(hit.Band())
		probes[i].Arm = null.StringFrom(arm)

		if _, exists := seenLevels[arm]; !exists {
			seenLevels[arm] = struct{}{}
			levels = append(levels, arm)
		}
	}

	return &Experiment{
		Counts:    ex.Counts,
		Probes:    probes,
		Cells:     ex.Cells,
		Aux:       ex.Aux,
		ArmLevels: levels,
	}, nil
}
