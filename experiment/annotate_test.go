package experiment

import (
	"testing"

	"github.com/scdna/probemisc"
	"gonum.org/v1/gonum/mat"
)

func testExperiment(t *testing.T, probes []Annotation) *Experiment {
	t.Helper()

	cells := []string{"AACGT", "GGTCA"}
	counts := mat.NewDense(len(probes), len(cells), nil)
	for i := range probes {
		for j := range cells {
			counts.Set(i, j, float64(10*i+j))
		}
	}

	ex, err := New(counts, probes, cells)
	if err != nil {
		t.Fatal(err)
	}

	return ex
}

func TestAnnotate(t *testing.T) {
	ex := testExperiment(t, []Annotation{
		{Probe: probemisc.Probe{ID: "AMPL1", Chr: "chr1", StartPos: 1000000, EndPos: 1000500}},
		{Probe: probemisc.Probe{ID: "AMPL2", Chr: "chr1", StartPos: 150000000, EndPos: 150000500}},
		{Probe: probemisc.Probe{ID: "DECOY1", Chr: "GL000220.1", StartPos: 100, EndPos: 200}},
	})

	out, err := Annotate(ex, "grch37")
	if err != nil {
		t.Fatal(err)
	}

	if len(out.Probes) != len(ex.Probes) {
		t.Fatalf("annotation changed the row count: %d != %d", len(out.Probes), len(ex.Probes))
	}
	for i := range out.Probes {
		if out.Probes[i].ID != ex.Probes[i].ID {
			t.Errorf("row %d: annotation permuted rows (%s != %s)", i, out.Probes[i].ID, ex.Probes[i].ID)
		}
	}

	if got := out.Probes[0].Arm.String; got != "1p" || !out.Probes[0].Arm.Valid {
		t.Errorf("AMPL1 arm = %q (valid=%v), want 1p", got, out.Probes[0].Arm.Valid)
	}
	if got := out.Probes[1].Arm.String; got != "1q" || !out.Probes[1].Arm.Valid {
		t.Errorf("AMPL2 arm = %q (valid=%v), want 1q", got, out.Probes[1].Arm.Valid)
	}

	// Arm is null exactly when cytoband is null
	for _, p := range out.Probes {
		if p.Arm.Valid != p.Cytoband.Valid {
			t.Errorf("%s: arm validity %v disagrees with cytoband validity %v", p.ID, p.Arm.Valid, p.Cytoband.Valid)
		}
	}
	if out.Probes[2].Cytoband.Valid {
		t.Errorf("DECOY1 should have a null cytoband, got %q", out.Probes[2].Cytoband.String)
	}

	// Categorical arm levels in first-encountered order
	if len(out.ArmLevels) != 2 || out.ArmLevels[0] != "1p" || out.ArmLevels[1] != "1q" {
		t.Errorf("unexpected arm levels: %v", out.ArmLevels)
	}

	// Count data untouched and shared
	if out.Counts != ex.Counts {
		t.Error("annotation should not copy or alter the count matrix")
	}
}

func TestAnnotateUnsupportedAssemblyFailsClosed(t *testing.T) {
	ex := testExperiment(t, []Annotation{
		{Probe: probemisc.Probe{ID: "AMPL1", Chr: "chr1", StartPos: 1000000, EndPos: 1000500}},
	})

	if _, err := Annotate(ex, "grch38"); err == nil {
		t.Fatal("expected a configuration error for grch38")
	}

	// The input container must be untouched on failure
	if ex.Probes[0].Cytoband.Valid || ex.Probes[0].Arm.Valid {
		t.Error("failed annotation mutated the input metadata")
	}
}

func TestAnnotateRecomputesOnRerun(t *testing.T) {
	ex := testExperiment(t, []Annotation{
		{Probe: probemisc.Probe{ID: "AMPL1", Chr: "chr1", StartPos: 1000000, EndPos: 1000500}},
	})

	once, err := Annotate(ex, "grch37")
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Annotate(once, "grch37")
	if err != nil {
		t.Fatal(err)
	}

	if twice.Probes[0].Cytoband != once.Probes[0].Cytoband || twice.Probes[0].Arm != once.Probes[0].Arm {
		t.Errorf("re-annotation changed the derived metadata: %+v != %+v", twice.Probes[0], once.Probes[0])
	}
}
