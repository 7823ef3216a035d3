// probepartition annotates a targeted panel's probes with cytoband and
// chromosome-arm labels, classifies each probe into its functional group,
// and splits the experiment's count matrix into one primary CNV table
// plus auxiliary tables for chromosome-Y, guide-RNA, barcode, and
// unclassified probes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/scdna/probemisc"
	"github.com/scdna/probemisc/cytoband"
	"github.com/scdna/probemisc/experiment"
	"gopkg.in/guregu/null.v3"
)

var client *storage.Client

func main() {
	var (
		manifestPath string
		countsPath   string
		assembly     string
		grnaProbe    string
		barcodeProbe string
		outPrefix    string
	)
	flag.StringVar(&manifestPath, "manifest", "", "Path to the tab-delimited probe manifest (probe.id, chr, start.pos, end.pos). May be a gs:// path.")
	flag.StringVar(&countsPath, "counts", "", "Path to the tab-delimited probe-by-cell count matrix. May be a gs:// path.")
	flag.StringVar(&assembly, "assembly", cytoband.SupportedAssembly, "Reference assembly of the probe coordinates.")
	flag.StringVar(&grnaProbe, "grna-probe", "", "Optional: probe.id of the guide-RNA probe.")
	flag.StringVar(&barcodeProbe, "barcode-probe", "", "Optional: probe.id of the sample barcode probe.")
	flag.StringVar(&outPrefix, "out", "experiment", "Prefix for the output tables.")
	flag.Parse()

	if manifestPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -manifest")
	}

	if countsPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -counts")
	}

	if strings.HasPrefix(manifestPath, "gs://") || strings.HasPrefix(countsPath, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	ex, err := buildExperiment(manifestPath, countsPath)
	if err != nil {
		log.Fatalln(err)
	}

	ex, err = experiment.Annotate(ex, assembly)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Annotated %d probes; %d distinct chromosome arms observed", len(ex.Probes), len(ex.ArmLevels))

	special := experiment.SpecialProbes{
		GRNA:    optionalID(grnaProbe),
		Barcode: optionalID(barcodeProbe),
	}
	categories := experiment.Classify(ex.Probes, special)

	ex, partitioned, err := experiment.Partition(ex, categories)
	if err != nil {
		log.Fatalln(err)
	}
	if !partitioned {
		log.Println("No probes left the", experiment.CNV, "category; output is the unpartitioned table")
	}

	summarize(ex)

	if err := writeTables(outPrefix, ex); err != nil {
		log.Fatalln(err)
	}
}

// optionalID converts an empty flag value into the explicit
// "not specified" state.
func optionalID(id string) null.String {
	return null.NewString(id, id != "")
}

// buildExperiment assembles the container from the manifest and count
// matrix, requiring that the two agree row-by-row on probe identity so a
// misaligned pair of inputs cannot silently produce shifted metadata.
func buildExperiment(manifestPath, countsPath string) (*experiment.Experiment, error) {
	mf, err := probemisc.MaybeOpenFromGoogleStorage(manifestPath, client)
	if err != nil {
		return nil, err
	}
	defer mf.Close()

	probes, err := probemisc.ReadProbeManifest(mf)
	if err != nil {
		return nil, err
	}

	cf, err := probemisc.MaybeOpenFromGoogleStorage(countsPath, client)
	if err != nil {
		return nil, err
	}
	defer cf.Close()

	counts, probeIDs, cells, err := experiment.ReadCounts(cf)
	if err != nil {
		return nil, err
	}

	if len(probeIDs) != len(probes) {
		return nil, fmt.Errorf("manifest has %d probes but the count matrix has %d rows", len(probes), len(probeIDs))
	}
	annotations := make([]experiment.Annotation, len(probes))
	for i, p := range probes {
		if probeIDs[i] != p.ID {
			return nil, fmt.Errorf("row %d: manifest probe %q does not match count matrix probe %q", i+1, p.ID, probeIDs[i])
		}
		annotations[i] = experiment.Annotation{Probe: p}
	}

	return experiment.New(counts, annotations, cells)
}
