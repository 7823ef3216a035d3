// Package cytoband maps genomic intervals onto the chromosome banding
// pattern of a reference assembly. The banding table is bundled with the
// package and behaves as read-only process-wide state after first load.
package cytoband

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"sync"

	"github.com/carbocation/pfx"
	"github.com/scdna/probemisc"
)

//go:embed lookups/*
var embeddedTables embed.FS

// SupportedAssembly is the only reference build the bundled banding table
// covers. Requesting any other assembly is a configuration error.
const SupportedAssembly = "grch37"

// Record is one cytoband interval of the reference table. Positions are
// compared with the inclusive overlap rule used throughout this module.
// Record satisfies the irelate/interfaces.IPosition interval interface.
type Record struct {
	chrom string
	start int
	end   int
	band  string
}

func MakeRecord(chrom string, start, end int, band string) Record {
	return Record{chrom, start, end, band}
}

func (r Record) Chrom() string {
	return r.chrom
}

func (r Record) Start() uint32 {
	return uint32(r.start)
}

func (r Record) End() uint32 {
	return uint32(r.end)
}

func (r Record) Band() string {
	return r.band
}

// Arm derives the chromosome-arm label: the unprefixed chromosome name
// followed by the first character of the band code (p or q).
func (r Record) Arm() string {
	if r.band == "" {
		return ""
	}

	return probemisc.BareChrom(r.chrom) + r.band[:1]
}

var (
	loadOnce  sync.Once
	loaded    []Record
	loadedErr error
)

// Table returns the banding table for the requested assembly, loading it
// from the embedded lookup on first use. Only SupportedAssembly is
// available; anything else fails before any computation.
func Table(assembly string) ([]Record, error) {
	if assembly != SupportedAssembly {
		return nil, fmt.Errorf("cytoband: unsupported assembly %q (supported: %s)", assembly, SupportedAssembly)
	}

	loadOnce.Do(func() {
		loaded, loadedErr = parseTable(assembly)
	})

	return loaded, loadedErr
}

func parseTable(assembly string) ([]Record, error) {
	fileBytes, err := embeddedTables.ReadFile("lookups/" + assembly)
	if err != nil {
		return nil, pfx.Err(err)
	}

	cr := csv.NewReader(bytes.NewReader(fileBytes))
	cr.Comma = '\t'
	entries, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	records := make([]Record, 0, len(entries))
	header := make(map[string]int)

	for i, v := range entries {
		if i == 0 {
			for key, name := range v {
				header[name] = key
			}
			continue
		}

		start, err := strconv.Atoi(v[header["chromStart"]])
		if err != nil {
			return nil, err
		}
		end, err := strconv.Atoi(v[header["chromEnd"]])
		if err != nil {
			return nil, err
		}

		records = append(records, MakeRecord(v[header["chrom"]], start, end, v[header["band"]]))
	}

	return records, nil
}
