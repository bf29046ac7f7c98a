// Package source turns JSON and YAML documents into the generic tree
// (map[string]any, []any, string, json.Number/int64, bool, nil) that the
// FromJSON functions of this module consume, and encodes trees back to JSON.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	mibig "github.com/kblin/go-mibig"
)

// ReadJSON decodes a single JSON document. Numbers are kept as json.Number so
// that integers are never routed through float64.
//
// Duplicate object keys do not abort decoding (the last value wins), but the
// tree is returned together with duplicate_key Issues so callers can reject
// the document. Syntax errors are reported as a parse_error Issue.
func ReadJSON(data []byte) (any, error) {
	if !j.Valid(data) {
		return nil, parseIssue(syntaxError(data))
	}
	// the strict tokenizer rejects what Valid might let through and tracks keys
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	b := &treeBuilder{dec: dec}
	v, err := b.value(mibig.Root())
	if err != nil {
		return nil, parseIssue(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, parseIssue(err)
	}
	if len(b.dups) > 0 {
		return v, b.dups
	}
	return v, nil
}

// ReadJSONReader is ReadJSON over an io.Reader. The reader is consumed fully;
// read failures are returned as plain errors, not Issues.
func ReadJSONReader(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	return ReadJSON(data)
}

func syntaxError(data []byte) error {
	var v any
	if err := j.Unmarshal(data, &v); err != nil {
		return err
	}
	return errors.New("invalid JSON document")
}

func parseIssue(err error) mibig.Issues {
	return mibig.Issues{{Field: "document", Path: "/", Code: mibig.CodeParseError, Message: err.Error()}}
}

type treeBuilder struct {
	dec  *json.Decoder
	dups mibig.Issues
}

func (b *treeBuilder) value(p mibig.PathRef) (any, error) {
	tok, err := b.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return b.object(p)
		case '[':
			return b.array(p)
		}
		return nil, fmt.Errorf("unexpected delimiter %q at %s", rune(v), p.Pointer())
	case json.Number, string, bool, nil:
		return v, nil
	}
	return nil, fmt.Errorf("unexpected token %v at %s", tok, p.Pointer())
}

func (b *treeBuilder) object(p mibig.PathRef) (any, error) {
	m := map[string]any{}
	for b.dec.More() {
		tok, err := b.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key at %s", p.Pointer())
		}
		if _, dup := m[key]; dup {
			b.dups = append(b.dups, p.Field(key).Issue("document", mibig.CodeDuplicateKey, fmt.Sprintf("key '%s' duplicated", key)))
		}
		v, err := b.value(p.Field(key))
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
	if _, err := b.dec.Token(); err != nil { // '}'
		return nil, err
	}
	return m, nil
}

func (b *treeBuilder) array(p mibig.PathRef) (any, error) {
	arr := []any{}
	for i := 0; b.dec.More(); i++ {
		v, err := b.value(p.Index(i))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := b.dec.Token(); err != nil { // ']'
		return nil, err
	}
	return arr, nil
}

// Marshal encodes a tree as indented JSON. Object keys are emitted in sorted
// order, so equal trees always encode to equal bytes.
func Marshal(tree any) ([]byte, error) {
	return j.MarshalIndent(tree, "", "  ")
}

// Canonical encodes a tree as compact JSON with sorted keys.
func Canonical(tree any) ([]byte, error) {
	return j.Marshal(tree)
}

// Equal reports whether two trees encode to the same canonical JSON. It
// treats json.Number("5") and int 5 as equal, which reflect.DeepEqual does not.
func Equal(a, b any) (bool, error) {
	ca, err := Canonical(a)
	if err != nil {
		return false, err
	}
	cb, err := Canonical(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ca, cb), nil
}
