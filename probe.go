package probemisc

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Probe is one row of the probe manifest produced by the panel designer.
// Positions are inclusive on both ends. Probe satisfies the
// irelate/interfaces.IPosition interval interface.
type Probe struct {
	ID       string `csv:"probe.id"`
	Chr      string `csv:"chr"`
	StartPos int    `csv:"start.pos"`
	EndPos   int    `csv:"end.pos"`
}

func (p Probe) Chrom() string {
	return p.Chr
}

func (p Probe) Start() uint32 {
	return uint32(p.StartPos)
}

func (p Probe) End() uint32 {
	return uint32(p.EndPos)
}

// ReadProbeManifest parses a tab-delimited probe manifest with the header
// probe.id, chr, start.pos, end.pos. Rows with start.pos > end.pos or
// duplicated probe ids are rejected.
func ReadProbeManifest(r io.Reader) ([]Probe, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = '\t'
		cr.LazyQuotes = true
		return cr
	})

	probes := []Probe{}
	if err := gocsv.Unmarshal(r, &probes); err != nil {
		return nil, pfx.Err(err)
	}

	seen := make(map[string]struct{}, len(probes))
	for i, p := range probes {
		if p.ID == "" {
			return nil, fmt.Errorf("probe manifest row %d: empty probe.id", i+1)
		}
		if _, exists := seen[p.ID]; exists {
			return nil, fmt.Errorf("probe manifest row %d: duplicate probe.id %q", i+1, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.StartPos > p.EndPos {
			return nil, fmt.Errorf("probe %s: start.pos %d exceeds end.pos %d", p.ID, p.StartPos, p.EndPos)
		}
	}

	return probes, nil
}
