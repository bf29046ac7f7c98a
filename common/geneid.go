package common

import (
	"fmt"
	"regexp"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/codec"
	"github.com/kblin/go-mibig/rules"
)

// invalidChars are the characters that may not appear in a gene identifier.
var invalidChars = regexp.MustCompile("[\\s!\"#$%&'()*+,/:;<=>?@\\[\\\\\\]^`{|}~]")

// NovelGeneID identifies a gene that is not (yet) present in the record, for
// example a gene annotated from literature only.
type NovelGeneID string

// GeneID identifies a gene that must exist in the record when one is supplied.
type GeneID string

// DecodeNovelGeneID decodes a bare JSON string.
func DecodeNovelGeneID(raw any) (NovelGeneID, error) {
	return codec.DecodeText[NovelGeneID](raw, "gene_id")
}

// DecodeGeneID decodes a bare JSON string.
func DecodeGeneID(raw any) (GeneID, error) {
	return codec.DecodeText[GeneID](raw, "gene_id")
}

// GeneIDFromJSON decodes and validates a gene id against vc's record.
func GeneIDFromJSON(raw any, vc *mibig.Context) (GeneID, error) {
	g, err := DecodeGeneID(raw)
	if err != nil {
		return "", err
	}
	return mibig.Build(g, vc)
}

func (g NovelGeneID) String() string { return string(g) }
func (g NovelGeneID) ToJSON() any    { return string(g) }

// Validate checks the identifier syntax only.
func (g NovelGeneID) Validate(*mibig.Context) mibig.Issues {
	var iss mibig.Issues
	if g == "" {
		iss = append(iss, mibig.NewIssue("gene_id", mibig.CodeTooShort, "Gene id cannot be empty"))
	}
	iss = append(iss, rules.Excludes("gene_id", invalidChars, string(g),
		fmt.Sprintf("Gene id '%s' contains invalid characters", g))...)
	return iss
}

func (g GeneID) String() string { return string(g) }
func (g GeneID) ToJSON() any    { return string(g) }

// Validate checks the syntax and, when vc carries a record, that the record
// has a CDS with this identifier.
func (g GeneID) Validate(vc *mibig.Context) mibig.Issues {
	iss := NovelGeneID(g).Validate(vc)
	if rec := vc.GetRecord(); rec != nil {
		if _, ok := rec.CDS(string(g)); !ok {
			iss = append(iss, mibig.NewIssue("gene_id", mibig.CodeNotFound,
				fmt.Sprintf("Gene id '%s' not found in record", g)))
		}
	}
	return iss
}
