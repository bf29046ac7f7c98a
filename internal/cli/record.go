package cli

import (
	"math"

	mibig "github.com/kblin/go-mibig"
)

// geneRecord is the record assembled from --genes and --seq-len. It knows
// gene names only, so every CDS reports an unbounded translation.
type geneRecord struct {
	seqLen int
	genes  map[string]struct{}
}

type geneCDS struct{}

func (geneCDS) TranslationLength() int { return math.MaxInt }

func newGeneRecord(seqLen int, genes []string) *geneRecord {
	if seqLen <= 0 {
		seqLen = math.MaxInt
	}
	r := &geneRecord{seqLen: seqLen, genes: make(map[string]struct{}, len(genes))}
	for _, g := range genes {
		r.genes[g] = struct{}{}
	}
	return r
}

func (r *geneRecord) SeqLen() int { return r.seqLen }

// CDS reports whether geneID was listed. With no genes listed every lookup
// succeeds, so --seq-len alone does not fail gene checks.
func (r *geneRecord) CDS(geneID string) (mibig.CDS, bool) {
	if len(r.genes) == 0 {
		return geneCDS{}, true
	}
	if _, ok := r.genes[geneID]; !ok {
		return nil, false
	}
	return geneCDS{}, true
}
