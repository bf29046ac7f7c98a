// Package saccharide implements the glycosylation annotation of a
// biosynthesis record: the sugar subclusters of a BGC and the
// glycosyltransferases attaching them.
package saccharide

import (
	mibig "github.com/kblin/go-mibig"
)

// Saccharide is the saccharide biosynthesis class annotation.
type Saccharide struct {
	Subclass             string
	Subclusters          []Subcluster
	Glycosyltransferases []Glycosyltransferase
}

// Decode decodes a saccharide annotation without validating it. Only
// glycosyltransferases is a required key.
func Decode(raw any) (Saccharide, error) {
	o, err := mibig.AsObject(raw, "Saccharide")
	if err != nil {
		return Saccharide{}, err
	}
	var s Saccharide
	s.Subclass, _ = o.OptString("subclass")
	s.Subclusters, err = mibig.DecodeList(o.List("subclusters", false), DecodeSubcluster)
	o.Adopt("subclusters", err)
	s.Glycosyltransferases, err = mibig.DecodeList(o.List("glycosyltransferases", true), DecodeGlycosyltransferase)
	o.Adopt("glycosyltransferases", err)
	if err := o.Err(); err != nil {
		return Saccharide{}, err
	}
	return s, nil
}

// FromJSON decodes and validates a saccharide annotation.
func FromJSON(raw any, vc *mibig.Context) (Saccharide, error) {
	s, err := Decode(raw)
	if err != nil {
		return Saccharide{}, err
	}
	return mibig.Build(s, vc)
}

// ToJSON returns the wire form. subclass and subclusters are omitted when
// empty.
func (s Saccharide) ToJSON() any {
	return mibig.Fields{}.
		Set("glycosyltransferases", mibig.EncodeList(s.Glycosyltransferases, Glycosyltransferase.ToJSON)).
		Optional("subclass", s.Subclass, s.Subclass != "", mibig.OmitWhenAbsent).
		Optional("subclusters", mibig.EncodeList(s.Subclusters, Subcluster.ToJSON), len(s.Subclusters) > 0, mibig.OmitWhenAbsent).
		Map()
}

func (s Saccharide) Validate(vc *mibig.Context) mibig.Issues {
	var iss mibig.Issues
	iss = append(iss, mibig.ValidateEach(s.Subclusters, vc).Under(mibig.Root().Field("subclusters"))...)
	iss = append(iss, mibig.ValidateEach(s.Glycosyltransferases, vc).Under(mibig.Root().Field("glycosyltransferases"))...)
	return iss
}

// Genes returns every gene referenced by the annotation, in order of first
// appearance.
func (s Saccharide) Genes() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(g string) {
		if _, ok := seen[g]; ok {
			return
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	for _, sc := range s.Subclusters {
		for _, g := range sc.Genes {
			add(string(g))
		}
	}
	for _, gt := range s.Glycosyltransferases {
		add(string(gt.Gene))
	}
	return out
}
