package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

// ReadCounts parses a tab-delimited probe-by-cell count matrix. The
// header row names the cell barcodes after a leading probe.id column;
// each data row is a probe id followed by one count per cell. Row order
// is preserved as the matrix row order.
func ReadCounts(r io.Reader) (*mat.Dense, []string, []string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'

	header, err := cr.Read()
	if err != nil {
		return nil, nil, nil, pfx.Err(err)
	}
	if len(header) < 2 {
		return nil, nil, nil, fmt.Errorf("count matrix header has %d columns; need a probe.id column and at least one cell", len(header))
	}
	cells := header[1:]

	probeIDs := make([]string, 0)
	values := make([]float64, 0)

	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, nil, pfx.Err(err)
		}

		if len(rec) != len(header) {
			return nil, nil, nil, fmt.Errorf("count matrix row %d has %d columns; expected %d", i+1, len(rec), len(header))
		}

		probeIDs = append(probeIDs, rec[0])
		for _, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("count matrix row %d (%s): %w", i+1, rec[0], err)
			}
			values = append(values, v)
		}
	}

	if len(probeIDs) == 0 {
		return nil, nil, nil, fmt.Errorf("count matrix has no probe rows")
	}

	return mat.NewDense(len(probeIDs), len(cells), values), probeIDs, cells, nil
}
