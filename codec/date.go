// Package codec holds the scalar wire codecs shared by the annotation types.
package codec

import (
	"time"

	mibig "github.com/kblin/go-mibig"
)

// DateLayout is the wire layout of changelog dates.
const DateLayout = "2006-01-02"

// Date returns a Codec that converts between YYYY-MM-DD strings and time.Time.
func Date() mibig.Codec[string, time.Time] { return dateCodec{} }

type dateCodec struct{}

func (dateCodec) Decode(a string) (time.Time, error) {
	t, err := time.Parse(DateLayout, a)
	if err != nil {
		return time.Time{}, mibig.Issues{{Field: "date", Path: "/", Code: mibig.CodeInvalidFormat, Message: "invalid date " + quote(a) + ", expected YYYY-MM-DD"}}
	}
	return t, nil
}

func (dateCodec) Encode(b time.Time) (string, error) {
	// Only the calendar day is significant; the time of day is dropped.
	return b.Format(DateLayout), nil
}

func quote(s string) string { return "'" + s + "'" }
