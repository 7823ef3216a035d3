package cytoband

import (
	"github.com/brentp/irelate/interfaces"
	"github.com/scdna/probemisc"
)

// Overlaps reports whether two intervals share at least one base. Both
// endpoints are inclusive and strand is ignored. Chromosome names are
// compared in normalized form, so "1" and "chr1" refer to the same
// chromosome.
func Overlaps(a, b interfaces.IPosition) bool {
	if probemisc.NormalizeChrom(a.Chrom()) != probemisc.NormalizeChrom(b.Chrom()) {
		return false
	}

	lo := a.Start()
	if b.Start() > lo {
		lo = b.Start()
	}
	hi := a.End()
	if b.End() < hi {
		hi = b.End()
	}

	return lo <= hi
}

// FindOverlaps resolves each query interval to at most one record of the
// reference table. The result slice is index-aligned with the queries; a
// query with no overlapping record yields nil.
//
// When a query spans more than one record, the first overlapping record
// in reference-table order wins. The bundled table is coordinate-sorted
// per chromosome, so this picks the band containing the query's leftmost
// overlapping base. This is a deterministic convention, not a biological
// claim; it is pinned by tests.
func FindOverlaps(queries []interfaces.IPosition, reference []Record) []*Record {
	hits := make([]*Record, len(queries))
	for i, q := range queries {
		for j := range reference {
			if Overlaps(q, reference[j]) {
				hits[i] = &reference[j]
				break
			}
		}
	}

	return hits
}
