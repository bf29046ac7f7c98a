package saccharide

import (
	"fmt"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/common"
)

// GTMethod is the experimental or computational method backing a
// glycosyltransferase annotation.
type GTMethod string

const (
	MethodSequencePrediction GTMethod = "Sequence-based prediction"
	MethodStructureInference GTMethod = "Structure-based inference"
	MethodKnockOut           GTMethod = "Knock-out construct"
	MethodActivityAssay      GTMethod = "Activity assay"
)

// GTMethods lists the accepted methods in their canonical order.
var GTMethods = []GTMethod{
	MethodSequencePrediction,
	MethodStructureInference,
	MethodKnockOut,
	MethodActivityAssay,
}

// Known reports whether m is one of GTMethods.
func (m GTMethod) Known() bool {
	switch m {
	case MethodSequencePrediction, MethodStructureInference, MethodKnockOut, MethodActivityAssay:
		return true
	}
	return false
}

// GTEvidence supports a glycosyltransferase annotation with a method and the
// references describing it.
type GTEvidence struct {
	Method     GTMethod
	References []common.Citation
}

// DecodeGTEvidence decodes {"method": str, "references": [str]}. Missing
// references decode as an empty list.
func DecodeGTEvidence(raw any) (GTEvidence, error) {
	o, err := mibig.AsObject(raw, "GTEvidence")
	if err != nil {
		return GTEvidence{}, err
	}
	var e GTEvidence
	e.Method = GTMethod(o.String("method"))
	e.References, err = common.DecodeCitations(o.List("references", false))
	o.Adopt("references", err)
	if err := o.Err(); err != nil {
		return GTEvidence{}, err
	}
	return e, nil
}

// GTEvidenceFromJSON decodes and validates a piece of evidence.
func GTEvidenceFromJSON(raw any, vc *mibig.Context) (GTEvidence, error) {
	e, err := DecodeGTEvidence(raw)
	if err != nil {
		return GTEvidence{}, err
	}
	return mibig.Build(e, vc)
}

func (e GTEvidence) ToJSON() any {
	return mibig.Fields{}.
		Set("method", string(e.Method)).
		Set("references", common.CitationsToJSON(e.References)).
		Map()
}

// Validate checks the method and the reference list. References may only be
// empty at questionable quality.
func (e GTEvidence) Validate(vc *mibig.Context) mibig.Issues {
	var iss mibig.Issues
	if !e.Method.Known() {
		iss = append(iss, mibig.Root().Field("method").Issue("GTEvidence.method", mibig.CodeInvalidEnum,
			fmt.Sprintf("Invalid method: %s", e.Method)))
	}
	iss = append(iss, common.ValidateCitationList(e.References, "", vc).Under(mibig.Root().Field("references"))...)
	return iss
}
