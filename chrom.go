package probemisc

import "strconv"

// NormalizeChrom maps a chromosome name to its canonical prefixed form:
// the autosomes 1-22 and the sex chromosomes X and Y gain a "chr" prefix
// if they lack one. Any other name (patches, decoys, custom contigs)
// passes through unchanged.
func NormalizeChrom(chrom string) string {
	bare := chrom
	if len(chrom) > 3 && chrom[:3] == "chr" {
		bare = chrom[3:]
	}

	if !IsCanonicalChrom(bare) {
		return chrom
	}

	return "chr" + bare
}

// BareChrom is the inverse view: the chromosome name with any "chr"
// prefix removed, for names that refer to the canonical chromosomes.
// Other names pass through unchanged.
func BareChrom(chrom string) string {
	if len(chrom) > 3 && chrom[:3] == "chr" && IsCanonicalChrom(chrom[3:]) {
		return chrom[3:]
	}

	return chrom
}

// IsCanonicalChrom reports whether the (unprefixed) name refers to one
// of the autosomes 1-22 or to X or Y.
func IsCanonicalChrom(bare string) bool {
	if bare == "X" || bare == "Y" {
		return true
	}

	n, err := strconv.Atoi(bare)

	return err == nil && n >= 1 && n <= 22
}
