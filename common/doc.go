// Package common holds the primitives shared by every MIBiG annotation type:
// genomic locations, gene identifiers, citations, submitter ids, SMILES
// strings and the entry changelog.
//
// Every type follows the same shape:
//
//	Decode<T>(raw any) (T, error)                 // structure only
//	<T>FromJSON(raw any, vc *mibig.Context) (T, error) // decode, then validate
//	(T) Validate(vc *mibig.Context) mibig.Issues
//	(T) ToJSON() any
//
// Values built from Go literals are not validated until Validate or
// mibig.Build is called.
package common
