package codec

import (
	mibig "github.com/kblin/go-mibig"
)

// Text returns a Codec[string, T] for string-backed identifier types (SMILES,
// gene ids, submitter ids, release versions). It performs no validation: the
// domain type's Validate owns the rules.
func Text[T ~string]() mibig.Codec[string, T] { return textCodec[T]{} }

type textCodec[T ~string] struct{}

func (textCodec[T]) Decode(a string) (T, error) { return T(a), nil }
func (textCodec[T]) Encode(b T) (string, error) { return string(b), nil }

// DecodeText decodes a raw tree value that must be a JSON string into T.
func DecodeText[T ~string](raw any, field string) (T, error) {
	s, ok := mibig.AsString(raw)
	if !ok {
		var zero T
		return zero, mibig.Issues{{Field: field, Path: "/", Code: mibig.CodeInvalidType, Message: field + " needs to be a string"}}
	}
	return Text[T]().Decode(s)
}
