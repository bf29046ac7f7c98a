package codec

import (
	"strings"

	mibig "github.com/kblin/go-mibig"
)

// TaggedValue is the (database, value) pair carried by a citation string.
type TaggedValue struct {
	Tag   string
	Value string
}

// Tagged returns a Codec that converts between "tag:value" strings and
// TaggedValue. The string is split on the first colon only, so values such as
// URLs may contain further colons.
func Tagged() mibig.Codec[string, TaggedValue] { return taggedCodec{} }

type taggedCodec struct{}

func (taggedCodec) Decode(a string) (TaggedValue, error) {
	tag, value, ok := strings.Cut(a, ":")
	if !ok {
		return TaggedValue{}, mibig.Issues{{Field: "citation", Path: "/", Code: mibig.CodeInvalidFormat, Message: "citation " + quote(a) + " must have the form database:value"}}
	}
	return TaggedValue{Tag: tag, Value: value}, nil
}

func (taggedCodec) Encode(b TaggedValue) (string, error) {
	return b.Tag + ":" + b.Value, nil
}
