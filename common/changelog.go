package common

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/codec"
	"github.com/kblin/go-mibig/rules"
)

// NextRelease marks changes that are not part of a published release yet.
const NextRelease ReleaseVersion = "next"

var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// ReleaseEntry is one change to an entry, credited to its contributors.
type ReleaseEntry struct {
	Contributors []SubmitterID
	Reviewers    []SubmitterID
	Date         time.Time
	Comment      string
}

// DecodeReleaseEntry decodes a changelog entry. Missing contributor and
// reviewer lists decode as empty.
func DecodeReleaseEntry(raw any) (ReleaseEntry, error) {
	o, err := mibig.AsObject(raw, "ReleaseEntry")
	if err != nil {
		return ReleaseEntry{}, err
	}
	var e ReleaseEntry
	e.Contributors, err = mibig.DecodeList(o.List("contributors", false), DecodeSubmitterID)
	o.Adopt("contributors", err)
	e.Reviewers, err = mibig.DecodeList(o.List("reviewers", false), DecodeSubmitterID)
	o.Adopt("reviewers", err)
	if rd, ok := o.Raw("date"); ok {
		d, err := decodeDate(rd)
		o.Adopt("date", err)
		e.Date = d
	} else {
		o.Fail("date", mibig.CodeRequired, "ReleaseEntry.date is required")
	}
	e.Comment = o.String("comment")
	if err := o.Err(); err != nil {
		return ReleaseEntry{}, err
	}
	return e, nil
}

func decodeDate(raw any) (time.Time, error) {
	s, ok := mibig.AsString(raw)
	if !ok {
		return time.Time{}, mibig.Issues{mibig.NewIssue("date", mibig.CodeInvalidType, "date needs to be a string")}
	}
	return codec.Date().Decode(s)
}

func encodeDate(t time.Time) string {
	s, _ := codec.Date().Encode(t)
	return s
}

// ToJSON returns the wire form; both submitter lists are always emitted.
func (e ReleaseEntry) ToJSON() any {
	return mibig.Fields{}.
		Set("contributors", mibig.EncodeList(e.Contributors, SubmitterID.ToJSON)).
		Set("reviewers", mibig.EncodeList(e.Reviewers, SubmitterID.ToJSON)).
		Set("date", encodeDate(e.Date)).
		Set("comment", e.Comment).
		Map()
}

// Validate requires at least one contributor and valid submitter ids.
func (e ReleaseEntry) Validate(vc *mibig.Context) mibig.Issues {
	var iss mibig.Issues
	contributors := mibig.Root().Field("contributors")
	iss = append(iss, mibig.Issues(rules.NotEmpty("contributors", e.Contributors, "contributor list cannot be empty")).Under(contributors)...)
	iss = append(iss, mibig.ValidateEach(e.Contributors, vc).Under(contributors)...)
	iss = append(iss, mibig.ValidateEach(e.Reviewers, vc).Under(mibig.Root().Field("reviewers"))...)
	return iss
}

func (e ReleaseEntry) String() string {
	return fmt.Sprintf("%s %s, Contributors: %s; Reviewers: %s",
		encodeDate(e.Date), e.Comment, joinIDs(e.Contributors), joinIDs(e.Reviewers))
}

func joinIDs(ids []SubmitterID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

// ReleaseVersion is a dotted numeric version ("3.1") or NextRelease.
type ReleaseVersion string

// DecodeReleaseVersion decodes a bare JSON string.
func DecodeReleaseVersion(raw any) (ReleaseVersion, error) {
	return codec.DecodeText[ReleaseVersion](raw, "release version")
}

func (v ReleaseVersion) String() string { return string(v) }
func (v ReleaseVersion) ToJSON() any    { return string(v) }

// IsNext reports whether v is the unreleased marker.
func (v ReleaseVersion) IsNext() bool { return v == NextRelease }

func (v ReleaseVersion) Validate(*mibig.Context) mibig.Issues {
	if v.IsNext() {
		return nil
	}
	return rules.Match("release version", versionPattern, string(v), fmt.Sprintf("invalid version '%s'", v))
}

// Release groups the entries published together under one version.
type Release struct {
	Version ReleaseVersion
	Date    *time.Time // nil only for the NextRelease
	Entries []ReleaseEntry
}

// DecodeRelease decodes a release. The date key must be present; null (or an
// empty string) means "not released yet".
func DecodeRelease(raw any) (Release, error) {
	o, err := mibig.AsObject(raw, "Release")
	if err != nil {
		return Release{}, err
	}
	var r Release
	if rv, ok := o.Raw("version"); ok {
		r.Version, err = DecodeReleaseVersion(rv)
		o.Adopt("version", err)
	} else {
		o.Fail("version", mibig.CodeRequired, "Release.version is required")
	}
	if !o.Has("date") {
		o.Fail("date", mibig.CodeRequired, "Release.date is required")
	} else if rd, _ := o.Raw("date"); rd != nil && rd != "" {
		d, err := decodeDate(rd)
		o.Adopt("date", err)
		if err == nil {
			r.Date = &d
		}
	}
	r.Entries, err = mibig.DecodeList(o.List("entries", true), DecodeReleaseEntry)
	o.Adopt("entries", err)
	if err := o.Err(); err != nil {
		return Release{}, err
	}
	return r, nil
}

// ToJSON returns the wire form. An absent date is emitted as null.
func (r Release) ToJSON() any {
	var date any
	if r.Date != nil {
		date = encodeDate(*r.Date)
	}
	return mibig.Fields{}.
		Set("version", r.Version.ToJSON()).
		Set("entries", mibig.EncodeList(r.Entries, ReleaseEntry.ToJSON)).
		Optional("date", date, r.Date != nil, mibig.NullWhenAbsent).
		Map()
}

// Validate checks the version, requires a date for published releases and
// validates every entry.
func (r Release) Validate(vc *mibig.Context) mibig.Issues {
	var iss mibig.Issues
	iss = append(iss, r.Version.Validate(vc).Under(mibig.Root().Field("version"))...)
	if r.Date == nil && !r.Version.IsNext() {
		iss = append(iss, mibig.Root().Field("date").Issue("Release", mibig.CodeRequired,
			"Release date must be provided if version is not 'next'"))
	}
	iss = append(iss, mibig.ValidateEach(r.Entries, vc).Under(mibig.Root().Field("entries"))...)
	return iss
}

func (r Release) String() string {
	date := "unreleased"
	if r.Date != nil {
		date = encodeDate(*r.Date)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", r.Version, date)
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "  %s\n", e)
	}
	return b.String()
}

// ChangeLog is the release history of one entry. Releases are kept in input
// order; neither ordering nor uniqueness of versions is checked.
type ChangeLog struct {
	Releases []Release
}

// DecodeChangeLog decodes {"releases": [...]}.
func DecodeChangeLog(raw any) (ChangeLog, error) {
	o, err := mibig.AsObject(raw, "ChangeLog")
	if err != nil {
		return ChangeLog{}, err
	}
	releases, err := mibig.DecodeList(o.List("releases", true), DecodeRelease)
	o.Adopt("releases", err)
	if err := o.Err(); err != nil {
		return ChangeLog{}, err
	}
	return ChangeLog{Releases: releases}, nil
}

// ChangeLogFromJSON decodes and validates a changelog.
func ChangeLogFromJSON(raw any, vc *mibig.Context) (ChangeLog, error) {
	cl, err := DecodeChangeLog(raw)
	if err != nil {
		return ChangeLog{}, err
	}
	return mibig.Build(cl, vc)
}

func (c ChangeLog) ToJSON() any {
	return mibig.Fields{}.Set("releases", mibig.EncodeList(c.Releases, Release.ToJSON)).Map()
}

func (c ChangeLog) Validate(vc *mibig.Context) mibig.Issues {
	return mibig.ValidateEach(c.Releases, vc).Under(mibig.Root().Field("releases"))
}

func (c ChangeLog) String() string {
	parts := make([]string, len(c.Releases))
	for i, r := range c.Releases {
		parts[i] = r.String()
	}
	return strings.Join(parts, "\n")
}

// Next returns the unreleased release, if any.
func (c ChangeLog) Next() (Release, bool) {
	for _, r := range c.Releases {
		if r.Version.IsNext() {
			return r, true
		}
	}
	return Release{}, false
}
