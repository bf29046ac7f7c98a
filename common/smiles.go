package common

import (
	"fmt"
	"regexp"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/codec"
	"github.com/kblin/go-mibig/rules"
)

var smilesPattern = regexp.MustCompile(`^[\[\]a-zA-Z0-9@()=/\\#+.%*-]+$`)

// Smiles is a chemical structure in SMILES notation. Only the character set
// is checked, not the chemistry.
type Smiles string

// DecodeSmiles decodes a bare JSON string.
func DecodeSmiles(raw any) (Smiles, error) {
	return codec.DecodeText[Smiles](raw, "Smiles")
}

// SmilesFromJSON decodes and validates a SMILES string.
func SmilesFromJSON(raw any) (Smiles, error) {
	s, err := DecodeSmiles(raw)
	if err != nil {
		return "", err
	}
	return mibig.Build(s, nil)
}

func (s Smiles) String() string { return string(s) }
func (s Smiles) ToJSON() any    { return string(s) }

func (s Smiles) Validate(*mibig.Context) mibig.Issues {
	return rules.Match("Smiles", smilesPattern, string(s), fmt.Sprintf("Invalid value '%s'", s))
}
