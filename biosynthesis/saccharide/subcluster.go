package saccharide

import (
	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/common"
)

// Subcluster groups the genes responsible for building one sugar.
type Subcluster struct {
	Specificity common.Smiles
	Genes       []common.GeneID
	References  []common.Citation
}

// DecodeSubcluster decodes a subcluster. specificity and genes are required
// keys; missing references decode as an empty list.
func DecodeSubcluster(raw any) (Subcluster, error) {
	o, err := mibig.AsObject(raw, "Subcluster")
	if err != nil {
		return Subcluster{}, err
	}
	var sc Subcluster
	if rs, ok := o.Raw("specificity"); ok {
		sc.Specificity, err = common.DecodeSmiles(rs)
		o.Adopt("specificity", err)
	} else {
		o.Fail("specificity", mibig.CodeRequired, "Subcluster.specificity is required")
	}
	sc.Genes, err = mibig.DecodeList(o.List("genes", true), common.DecodeGeneID)
	o.Adopt("genes", err)
	sc.References, err = common.DecodeCitations(o.List("references", false))
	o.Adopt("references", err)
	if err := o.Err(); err != nil {
		return Subcluster{}, err
	}
	return sc, nil
}

// SubclusterFromJSON decodes and validates a subcluster.
func SubclusterFromJSON(raw any, vc *mibig.Context) (Subcluster, error) {
	sc, err := DecodeSubcluster(raw)
	if err != nil {
		return Subcluster{}, err
	}
	return mibig.Build(sc, vc)
}

func (sc Subcluster) ToJSON() any {
	return mibig.Fields{}.
		Set("specificity", sc.Specificity.ToJSON()).
		Set("genes", mibig.EncodeList(sc.Genes, common.GeneID.ToJSON)).
		Set("references", common.CitationsToJSON(sc.References)).
		Map()
}

// Validate checks the specificity, every gene and the reference list. An
// empty gene list is accepted.
func (sc Subcluster) Validate(vc *mibig.Context) mibig.Issues {
	var iss mibig.Issues
	iss = append(iss, sc.Specificity.Validate(vc).Under(mibig.Root().Field("specificity"))...)
	iss = append(iss, mibig.ValidateEach(sc.Genes, vc).Under(mibig.Root().Field("genes"))...)
	iss = append(iss, common.ValidateCitationList(sc.References, "", vc).Under(mibig.Root().Field("references"))...)
	return iss
}
