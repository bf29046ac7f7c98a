package mibig

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeDuplicateKey  = "duplicate_key"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	// Domain passes (record/CDS aware)
	CodeDomainRange = "domain_range"
	CodeNotFound    = "not_found"
)

// Issue represents a single validation entry.
type Issue struct {
	Field   string // Dotted field name the rule is about (for example: Location.from).
	Path    string // JSON Pointer relative to the validated value (for example: /evidence/1/method).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"min":1, "got":0}).
	Params map[string]any
}

// String renders the issue as "path field: message".
func (it Issue) String() string {
	p := it.Path
	if p == "" {
		p = "/"
	}
	return fmt.Sprintf("%s %s: %s", p, it.Field, it.Message)
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first three issues as "field: message".
func (iss Issues) Error() string {
	const maxShown = 3
	parts := make([]string, 0, maxShown+1)
	for i, it := range iss {
		if i == maxShown {
			parts = append(parts, fmt.Sprintf("... (total %d)", len(iss)))
			break
		}
		parts = append(parts, it.Field+": "+it.Message)
	}
	return strings.Join(parts, "; ")
}

// HasField reports whether any issue carries the given field name.
func (iss Issues) HasField(field string) bool {
	for _, it := range iss {
		if it.Field == field {
			return true
		}
	}
	return false
}

// Under returns a copy of iss with every path prefixed by p. Child validators
// report paths relative to themselves; parents use Under to anchor them.
func (iss Issues) Under(p PathRef) Issues {
	if len(iss) == 0 {
		return nil
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = p.Join(it.Path)
		out[i] = it
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
