package experiment

import (
	"log"
	"strconv"

	"github.com/scdna/probemisc"
	"gopkg.in/guregu/null.v3"
)

// Category tags every probe with exactly one functional group. CNV is
// the reference category: its probes stay in the primary table, all
// other categories become auxiliary sub-tables under their own name.
type Category string

const (
	CNV              Category = "CNV"
	ChrYCounts       Category = "chrYCounts"
	GRNACounts       Category = "grnaCounts"
	BarcodeCounts    Category = "barcodeCounts"
	OtherProbeCounts Category = "otherProbeCounts"
)

// CategoryNames lists the non-reference categories in their stable
// sub-table order.
var CategoryNames = []string{
	string(ChrYCounts),
	string(GRNACounts),
	string(BarcodeCounts),
	string(OtherProbeCounts),
}

// SpecialProbes names the panel's non-genomic probes. An invalid
// null.String means that slot was not configured, which is not an error.
type SpecialProbes struct {
	GRNA    null.String
	Barcode null.String
}

// overrideRule reassigns one configured probe id after the
// chromosome-based defaults have been applied, so special probes win
// over chromosome membership. Rules apply in slice order.
type overrideRule struct {
	slot string
	id   null.String
	cat  Category
}

// Classify assigns each probe to exactly one Category. Autosomal and
// chromosome-X probes default to CNV, chromosome-Y probes to ChrYCounts,
// and probes on any other contig to OtherProbeCounts; the configured
// guide-RNA and barcode probe ids then override their defaults.
func Classify(probes []Annotation, special SpecialProbes) map[string]Category {
	categories := make(map[string]Category, len(probes))
	for _, p := range probes {
		categories[p.ID] = baseCategory(p.Chr)
	}

	rules := []overrideRule{
		{slot: "guide-RNA probe", id: special.GRNA, cat: GRNACounts},
		{slot: "barcode probe", id: special.Barcode, cat: BarcodeCounts},
	}

	for _, rule := range rules {
		if !rule.id.Valid {
			log.Printf("classify: %s not specified; skipping %s", rule.slot, rule.cat)
			continue
		}
		if _, exists := categories[rule.id.String]; !exists {
			log.Printf("classify: %s %q not present in the probe manifest", rule.slot, rule.id.String)
			continue
		}
		categories[rule.id.String] = rule.cat
	}

	return categories
}

func baseCategory(chrom string) Category {
	bare := probemisc.BareChrom(chrom)

	if bare == "Y" {
		return ChrYCounts
	}
	if bare == "X" {
		return CNV
	}
	if n, err := strconv.Atoi(bare); err == nil && n >= 1 && n <= 22 {
		return CNV
	}

	return OtherProbeCounts
}
