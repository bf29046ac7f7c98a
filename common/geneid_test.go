package common_test

import (
	"testing"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/common"
)

func TestNovelGeneID_Validate(t *testing.T) {
	valid := []string{"orf1", "AAB12345.1", "ctg1_23", "sacA-2"}
	for _, v := range valid {
		if iss := common.NovelGeneID(v).Validate(nil); len(iss) != 0 {
			t.Fatalf("%q: unexpected issues %v", v, iss)
		}
	}
	invalid := []string{"", "orf 1", "a/b", "gene:1", "x;y", "tab\tid"}
	for _, v := range invalid {
		iss := common.NovelGeneID(v).Validate(nil)
		if len(iss) != 1 || iss[0].Field != "gene_id" {
			t.Fatalf("%q: expected one gene_id issue, got %v", v, iss)
		}
	}
}

func TestGeneID_Validate_AgainstRecord(t *testing.T) {
	rec := fakeRecord{seqLen: 1000, genes: map[string]fakeCDS{"sacA": {n: 300}}}
	vc := mibig.NewContext().WithRecord(rec)

	if iss := common.GeneID("sacA").Validate(vc); len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
	iss := common.GeneID("sacB").Validate(vc)
	if len(iss) != 1 || iss[0].Code != mibig.CodeNotFound {
		t.Fatalf("expected not_found, got %v", iss)
	}
	// without a record only the syntax is checked
	if iss := common.GeneID("sacB").Validate(nil); len(iss) != 0 {
		t.Fatalf("unexpected issues without record: %v", iss)
	}
	// NovelGeneID never consults the record
	if iss := common.NovelGeneID("sacB").Validate(vc); len(iss) != 0 {
		t.Fatalf("novel gene id should ignore the record: %v", iss)
	}
}

func TestGeneID_FromJSON(t *testing.T) {
	g, err := common.GeneIDFromJSON("sacA", nil)
	if err != nil || g != "sacA" || g.ToJSON() != "sacA" {
		t.Fatalf("from json err=%v g=%q", err, g)
	}
	if _, err := common.GeneIDFromJSON(12, nil); err == nil {
		t.Fatalf("expected invalid_type for non-string gene id")
	}
}
