package experiment

import (
	"testing"

	"github.com/scdna/probemisc"
	"gopkg.in/guregu/null.v3"
)

func classifyFixture() []Annotation {
	return []Annotation{
		{Probe: probemisc.Probe{ID: "AMPL1", Chr: "chr1", StartPos: 100, EndPos: 200}},
		{Probe: probemisc.Probe{ID: "AMPL2", Chr: "chrX", StartPos: 100, EndPos: 200}},
		{Probe: probemisc.Probe{ID: "AMPL3", Chr: "chrY", StartPos: 50000, EndPos: 50500}},
		{Probe: probemisc.Probe{ID: "GRNA1", Chr: "grna_ref", StartPos: 1, EndPos: 250}},
		{Probe: probemisc.Probe{ID: "BC1", Chr: "barcode_ref", StartPos: 1, EndPos: 250}},
	}
}

func TestClassifyChromosomeDefaults(t *testing.T) {
	categories := Classify(classifyFixture(), SpecialProbes{})

	want := map[string]Category{
		"AMPL1": CNV,
		"AMPL2": CNV,
		"AMPL3": ChrYCounts,
		"GRNA1": OtherProbeCounts,
		"BC1":   OtherProbeCounts,
	}
	for id, cat := range want {
		if categories[id] != cat {
			t.Errorf("%s: got %s, want %s", id, categories[id], cat)
		}
	}
}

func TestClassifySpecialProbeOverrides(t *testing.T) {
	special := SpecialProbes{
		GRNA:    null.StringFrom("GRNA1"),
		Barcode: null.StringFrom("BC1"),
	}
	categories := Classify(classifyFixture(), special)

	if categories["GRNA1"] != GRNACounts {
		t.Errorf("GRNA1: got %s, want %s", categories["GRNA1"], GRNACounts)
	}
	if categories["BC1"] != BarcodeCounts {
		t.Errorf("BC1: got %s, want %s", categories["BC1"], BarcodeCounts)
	}
}

func TestClassifySpecialProbeBeatsChromosomeY(t *testing.T) {
	// A guide-RNA probe that happens to sit on chrY is still a
	// guide-RNA probe.
	special := SpecialProbes{GRNA: null.StringFrom("AMPL3")}
	categories := Classify(classifyFixture(), special)

	if categories["AMPL3"] != GRNACounts {
		t.Errorf("AMPL3: got %s, want %s", categories["AMPL3"], GRNACounts)
	}
}

func TestClassifyMissingSpecialProbeIsNotFatal(t *testing.T) {
	special := SpecialProbes{GRNA: null.StringFrom("NOSUCH")}
	categories := Classify(classifyFixture(), special)

	if len(categories) != 5 {
		t.Fatalf("expected 5 classified probes, got %d", len(categories))
	}
	if _, exists := categories["NOSUCH"]; exists {
		t.Error("a configured id absent from the manifest must not invent a probe")
	}
}

func TestClassifyIsExhaustiveAndExclusive(t *testing.T) {
	probes := classifyFixture()
	categories := Classify(probes, SpecialProbes{Barcode: null.StringFrom("BC1")})

	if len(categories) != len(probes) {
		t.Fatalf("expected one category per probe: %d categories for %d probes", len(categories), len(probes))
	}
	valid := map[Category]struct{}{
		CNV: {}, ChrYCounts: {}, GRNACounts: {}, BarcodeCounts: {}, OtherProbeCounts: {},
	}
	for _, p := range probes {
		cat, exists := categories[p.ID]
		if !exists {
			t.Errorf("%s: no category assigned", p.ID)
			continue
		}
		if _, ok := valid[cat]; !ok {
			t.Errorf("%s: unknown category %q", p.ID, cat)
		}
	}
}

func TestClassifyAllCNV(t *testing.T) {
	probes := []Annotation{
		{Probe: probemisc.Probe{ID: "A", Chr: "chr2", StartPos: 1, EndPos: 2}},
		{Probe: probemisc.Probe{ID: "B", Chr: "chr11", StartPos: 1, EndPos: 2}},
	}
	categories := Classify(probes, SpecialProbes{})

	for id, cat := range categories {
		if cat != CNV {
			t.Errorf("%s: got %s, want %s", id, cat, CNV)
		}
	}
}
