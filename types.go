package mibig

import (
	"fmt"
	"strings"
)

// QualityLevel is the curation confidence tier of an annotation.
type QualityLevel int

const (
	QualityUnset        QualityLevel = iota // No quality supplied.
	QualityQuestionable                     // Low-confidence, manually flagged; relaxes bounds and evidence checks.
	QualityLow
	QualityMedium
	QualityHigh
)

func (q QualityLevel) String() string {
	switch q {
	case QualityQuestionable:
		return "questionable"
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return "unset"
	}
}

// ParseQualityLevel maps the wire form ("questionable", "low", "medium",
// "high") to a QualityLevel. The empty string maps to QualityUnset.
func ParseQualityLevel(s string) (QualityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return QualityUnset, nil
	case "questionable":
		return QualityQuestionable, nil
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high":
		return QualityHigh, nil
	}
	return QualityUnset, fmt.Errorf("mibig: unknown quality level %q", s)
}

// CDS is a coding sequence of a genomic record.
type CDS interface {
	TranslationLength() int
}

// Record is the genomic record annotations are checked against.
type Record interface {
	SeqLen() int
	// CDS looks up a coding sequence by gene identifier.
	CDS(geneID string) (CDS, bool)
}

// Context carries the optional validation context down the tree. A nil
// *Context is valid and means "nothing supplied". Values are never mutated;
// the With* helpers return modified copies.
type Context struct {
	Record  Record
	CDS     CDS
	Quality QualityLevel
}

// NewContext returns an empty Context.
func NewContext() *Context { return &Context{} }

// GetRecord returns the record or nil.
func (c *Context) GetRecord() Record {
	if c == nil {
		return nil
	}
	return c.Record
}

// GetCDS returns the CDS or nil.
func (c *Context) GetCDS() CDS {
	if c == nil {
		return nil
	}
	return c.CDS
}

// GetQuality returns the quality level or QualityUnset.
func (c *Context) GetQuality() QualityLevel {
	if c == nil {
		return QualityUnset
	}
	return c.Quality
}

// Questionable reports whether the questionable escape hatch is active.
func (c *Context) Questionable() bool { return c.GetQuality() == QualityQuestionable }

func (c *Context) clone() *Context {
	if c == nil {
		return &Context{}
	}
	cp := *c
	return &cp
}

// WithRecord returns a copy of c with the record set.
func (c *Context) WithRecord(r Record) *Context {
	cp := c.clone()
	cp.Record = r
	return cp
}

// WithCDS returns a copy of c with the CDS set.
func (c *Context) WithCDS(cds CDS) *Context {
	cp := c.clone()
	cp.CDS = cds
	return cp
}

// WithQuality returns a copy of c with the quality level set.
func (c *Context) WithQuality(q QualityLevel) *Context {
	cp := c.clone()
	cp.Quality = q
	return cp
}
