// Package mibig provides the validation and round-trip serialization layer
// for MIBiG biosynthetic gene cluster annotation records:
//
// - A stable error model via Issues (field name, JSON Pointer, code, message)
// - An explicit validation Context (genomic Record, CDS, quality level) threaded through Validate
// - Build/Check boundaries that turn a non-empty Issues list into an error
// - Helpers for decoding generic JSON trees and encoding them with omit-vs-null control
//
// Design policy:
// - Keep the error model and shared plumbing in the root package.
// - Place primitives under common/, annotation subtrees under biosynthesis/,
//   codecs under codec/, document readers under source/ and the CLI under cmd/mibig-check.
// - Every entity has FromJSON (decode + validate), Decode (decode only),
//   Validate and ToJSON.
//
// Typical usage:
//
//	tree, err := source.ReadJSON(data)
//	vc := mibig.NewContext().WithQuality(mibig.QualityHigh)
//	sac, err := saccharide.FromJSON(tree, vc)
//	iss, _ := mibig.AsIssues(err)
//	out := sac.ToJSON()
package mibig
