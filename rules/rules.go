// Package rules holds the small field checks shared by the annotation types.
// Each rule returns []mibig.Issue anchored at "/" so callers can re-anchor
// them with Issues.Under.
package rules

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	mibig "github.com/kblin/go-mibig"
)

// NotEmpty reports a too_short issue when list has no elements.
func NotEmpty[T any](field string, list []T, msg string) []mibig.Issue {
	if err := validation.Validate(list, validation.Required); err != nil {
		return []mibig.Issue{mibig.Root().Issue(field, mibig.CodeTooShort, msg, "minItems", 1)}
	}
	return nil
}

// Match reports a pattern issue when value does not match re. Unlike the
// bare ozzo rule, the empty string is checked against re too.
func Match(field string, re *regexp.Regexp, value, msg string) []mibig.Issue {
	err := validation.Validate(value, validation.Match(re))
	if err == nil && value == "" && !re.MatchString(value) {
		err = validation.ErrMatchInvalid
	}
	if err != nil {
		return []mibig.Issue{mibig.Root().Issue(field, mibig.CodePattern, msg, "pattern", re.String())}
	}
	return nil
}

// FixedAlnum checks that value has exactly n characters, all ASCII letters or
// digits. Only the first failing check is reported: "invalid length" or
// "invalid characters".
func FixedAlnum(field, value string, n int) []mibig.Issue {
	if err := validation.Validate(value, validation.Required, validation.RuneLength(n, n)); err != nil {
		code := mibig.CodeTooShort
		if len([]rune(value)) > n {
			code = mibig.CodeTooLong
		}
		return []mibig.Issue{mibig.Root().Issue(field, code, "invalid length", "len", n)}
	}
	if err := validation.Validate(value, is.Alphanumeric); err != nil {
		return []mibig.Issue{mibig.Root().Issue(field, mibig.CodePattern, "invalid characters")}
	}
	return nil
}

// Excludes reports a pattern issue when value contains a match of forbidden.
func Excludes(field string, forbidden *regexp.Regexp, value, msg string) []mibig.Issue {
	if err := validation.Validate(value, excludes(forbidden)); err != nil {
		return []mibig.Issue{mibig.Root().Issue(field, mibig.CodePattern, msg)}
	}
	return nil
}

// excludes is the ozzo rule behind Excludes. Non-string values are rejected.
func excludes(forbidden *regexp.Regexp) validation.Rule {
	return validation.By(func(v any) error {
		s, ok := v.(string)
		if !ok {
			return errNotString
		}
		if forbidden.MatchString(s) {
			return errForbidden
		}
		return nil
	})
}

var (
	errForbidden = errors.New("contains forbidden characters")
	errNotString = errors.New("must be a string")
)
