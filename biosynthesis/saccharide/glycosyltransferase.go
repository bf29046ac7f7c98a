package saccharide

import (
	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/common"
)

// Glycosyltransferase annotates a gene transferring a sugar moiety.
type Glycosyltransferase struct {
	Gene     common.GeneID
	Evidence []GTEvidence
	// Specificity is the transferred sugar; nil when unknown.
	Specificity *common.Smiles
}

// DecodeGlycosyltransferase decodes a glycosyltransferase. Missing evidence
// decodes as an empty list; a missing specificity stays nil.
func DecodeGlycosyltransferase(raw any) (Glycosyltransferase, error) {
	o, err := mibig.AsObject(raw, "Glycosyltransferase")
	if err != nil {
		return Glycosyltransferase{}, err
	}
	var gt Glycosyltransferase
	if rg, ok := o.Raw("gene"); ok {
		gt.Gene, err = common.DecodeGeneID(rg)
		o.Adopt("gene", err)
	} else {
		o.Fail("gene", mibig.CodeRequired, "Glycosyltransferase.gene is required")
	}
	gt.Evidence, err = mibig.DecodeList(o.List("evidence", false), DecodeGTEvidence)
	o.Adopt("evidence", err)
	if rs, ok := o.Raw("specificity"); ok && rs != nil {
		s, err := common.DecodeSmiles(rs)
		o.Adopt("specificity", err)
		if err == nil {
			gt.Specificity = &s
		}
	}
	if err := o.Err(); err != nil {
		return Glycosyltransferase{}, err
	}
	return gt, nil
}

// GlycosyltransferaseFromJSON decodes and validates a glycosyltransferase.
func GlycosyltransferaseFromJSON(raw any, vc *mibig.Context) (Glycosyltransferase, error) {
	gt, err := DecodeGlycosyltransferase(raw)
	if err != nil {
		return Glycosyltransferase{}, err
	}
	return mibig.Build(gt, vc)
}

// ToJSON returns the wire form. The specificity key is omitted, not null,
// when there is no specificity.
func (gt Glycosyltransferase) ToJSON() any {
	var spec any
	if gt.Specificity != nil {
		spec = gt.Specificity.ToJSON()
	}
	return mibig.Fields{}.
		Set("gene", gt.Gene.ToJSON()).
		Set("evidence", mibig.EncodeList(gt.Evidence, GTEvidence.ToJSON)).
		Optional("specificity", spec, gt.Specificity != nil, mibig.OmitWhenAbsent).
		Map()
}

// Validate checks the gene (against vc's record when set), every piece of
// evidence and the specificity when present.
func (gt Glycosyltransferase) Validate(vc *mibig.Context) mibig.Issues {
	var iss mibig.Issues
	iss = append(iss, gt.Gene.Validate(vc).Under(mibig.Root().Field("gene"))...)
	iss = append(iss, mibig.ValidateEach(gt.Evidence, vc).Under(mibig.Root().Field("evidence"))...)
	if gt.Specificity != nil {
		iss = append(iss, gt.Specificity.Validate(vc).Under(mibig.Root().Field("specificity"))...)
	}
	return iss
}
