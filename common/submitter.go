package common

import (
	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/codec"
	"github.com/kblin/go-mibig/rules"
)

// SubmitterIDLength is the fixed length of a submitter identifier.
const SubmitterIDLength = 24

// SubmitterID identifies a contributor or reviewer. Only the syntax is
// checked; whether the submitter exists is up to the caller.
type SubmitterID string

// DecodeSubmitterID decodes a bare JSON string.
func DecodeSubmitterID(raw any) (SubmitterID, error) {
	return codec.DecodeText[SubmitterID](raw, "submitter")
}

// SubmitterIDFromJSON decodes and validates a submitter id.
func SubmitterIDFromJSON(raw any) (SubmitterID, error) {
	s, err := DecodeSubmitterID(raw)
	if err != nil {
		return "", err
	}
	return mibig.Build(s, nil)
}

func (s SubmitterID) String() string { return string(s) }
func (s SubmitterID) ToJSON() any    { return string(s) }

// Less orders submitter ids lexically.
func (s SubmitterID) Less(o SubmitterID) bool { return s < o }

// Validate requires exactly 24 ASCII letters or digits.
func (s SubmitterID) Validate(*mibig.Context) mibig.Issues {
	return rules.FixedAlnum("submitter", string(s), SubmitterIDLength)
}
