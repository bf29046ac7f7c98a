package common

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/codec"
	"github.com/kblin/go-mibig/rules"
)

// Database is the reference database a citation points into.
type Database string

const (
	DatabasePubmed Database = "pubmed"
	DatabaseDOI    Database = "doi"
	DatabasePatent Database = "patent"
	DatabaseURL    Database = "url"
)

var (
	pubmedPattern = regexp.MustCompile(`^(\d+)$`)
	doiPattern    = regexp.MustCompile(`^10\.\d{4,9}/[-._;()/:a-zA-Z0-9]+$`)
	patentPattern = regexp.MustCompile(`^(.+)$`)
	urlPattern    = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{2,256}\.[a-z]{2,6}\b([-a-zA-Z0-9@:%_+.~#?&/=]*)$`)
)

// Pattern returns the value pattern of a known database.
func (d Database) Pattern() (*regexp.Regexp, bool) {
	switch d {
	case DatabasePubmed:
		return pubmedPattern, true
	case DatabaseDOI:
		return doiPattern, true
	case DatabasePatent:
		return patentPattern, true
	case DatabaseURL:
		return urlPattern, true
	}
	return nil, false
}

// Citation is a database-tagged literature or web reference. Citations are
// comparable and can be used as map keys.
type Citation struct {
	Database Database
	Value    string
}

// NewCitation returns an unvalidated citation.
func NewCitation(db Database, value string) Citation {
	return Citation{Database: db, Value: value}
}

// DecodeCitation decodes a "database:value" string. An unknown database is
// kept as-is and reported by Validate.
func DecodeCitation(raw any) (Citation, error) {
	s, ok := mibig.AsString(raw)
	if !ok {
		return Citation{}, mibig.Issues{mibig.NewIssue("citation", mibig.CodeInvalidType, "citation needs to be a string")}
	}
	tv, err := codec.Tagged().Decode(s)
	if err != nil {
		return Citation{}, err
	}
	return Citation{Database: Database(tv.Tag), Value: tv.Value}, nil
}

// CitationFromJSON decodes and validates a citation.
func CitationFromJSON(raw any) (Citation, error) {
	c, err := DecodeCitation(raw)
	if err != nil {
		return Citation{}, err
	}
	return mibig.Build(c, nil)
}

func (c Citation) String() string {
	s, _ := codec.Tagged().Encode(codec.TaggedValue{Tag: string(c.Database), Value: c.Value})
	return s
}

// ToJSON returns the "database:value" wire form.
func (c Citation) ToJSON() any { return c.String() }

// Validate checks the value against the database's pattern. The context is
// not consulted.
func (c Citation) Validate(*mibig.Context) mibig.Issues {
	re, ok := c.Database.Pattern()
	if !ok {
		return mibig.Issues{mibig.NewIssue("citation", mibig.CodeInvalidEnum,
			fmt.Sprintf("Invalid database type '%s'", c.Database))}
	}
	return rules.Match("citation", re, c.Value,
		fmt.Sprintf("Invalid value '%s' for database '%s'", c.Value, c.Database))
}

// Compare orders citations by database, then value.
func (c Citation) Compare(o Citation) int {
	if r := cmp.Compare(c.Database, o.Database); r != 0 {
		return r
	}
	return cmp.Compare(c.Value, o.Value)
}

// Less reports whether c sorts before o.
func (c Citation) Less(o Citation) bool { return c.Compare(o) < 0 }

// SortCitations sorts cs in place by (database, value).
func SortCitations(cs []Citation) {
	slices.SortFunc(cs, Citation.Compare)
}

// DedupCitations returns the sorted, duplicate-free set of cs. cs is not
// modified.
func DedupCitations(cs []Citation) []Citation {
	out := slices.Clone(cs)
	SortCitations(out)
	return slices.Compact(out)
}

// DecodeCitations decodes a list of citation strings.
func DecodeCitations(raw []any) ([]Citation, error) {
	return mibig.DecodeList(raw, DecodeCitation)
}

// CitationsToJSON encodes a citation list, always as a list.
func CitationsToJSON(cs []Citation) []any {
	return mibig.EncodeList(cs, Citation.ToJSON)
}

// ValidateCitationList validates a list of references. The list must not be
// empty unless vc's quality is questionable; field names the list in that
// issue and defaults to "Citation".
func ValidateCitationList(cs []Citation, field string, vc *mibig.Context) mibig.Issues {
	if field == "" {
		field = "Citation"
	}
	var iss mibig.Issues
	if !vc.Questionable() {
		iss = append(iss, rules.NotEmpty(field, cs,
			fmt.Sprintf("citation list cannot be empty at quality level %s", vc.GetQuality()))...)
	}
	iss = append(iss, mibig.ValidateEach(cs, vc)...)
	return iss
}
