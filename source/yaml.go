package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	mibig "github.com/kblin/go-mibig"
)

// ReadYAML decodes the first document of a YAML stream into the same tree
// shape ReadJSON produces. Integers become int64, and timestamps (release
// dates) stay strings.
//
// Duplicate mapping keys are handled like in ReadJSON: the last value wins
// and the tree is returned together with duplicate_key Issues. Syntax errors
// and an empty stream are reported as a parse_error Issue.
func ReadYAML(r io.Reader) (any, error) {
	tree, err := NewYAMLReader(r).Next()
	if errors.Is(err, io.EOF) {
		return nil, parseIssue(errors.New("empty YAML document"))
	}
	return tree, err
}

// YAMLReader walks a multi-document YAML stream.
type YAMLReader struct {
	dec *yaml.Decoder
}

func NewYAMLReader(r io.Reader) *YAMLReader {
	return &YAMLReader{dec: yaml.NewDecoder(r)}
}

// Next returns the next document, or io.EOF once the stream is exhausted.
func (y *YAMLReader) Next() (any, error) {
	var doc yaml.Node
	if err := y.dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, parseIssue(err)
	}
	b := &yamlBuilder{}
	tree, err := b.node(&doc, mibig.Root())
	if err != nil {
		return nil, parseIssue(err)
	}
	if len(b.dups) > 0 {
		return tree, b.dups
	}
	return tree, nil
}

type yamlBuilder struct {
	dups mibig.Issues
}

func (b *yamlBuilder) node(n *yaml.Node, p mibig.PathRef) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return b.node(n.Content[0], p)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("dangling alias at line %d", n.Line)
		}
		return b.node(n.Alias, p)
	case yaml.MappingNode:
		return b.mapping(n, p)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := b.node(c, p.Index(i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
}

// mapping builds an object. Merge keys ("<<: *base" or "<<: [*a, *b]") are
// expanded after the explicit keys, so explicit keys always win; among merged
// sources the first one listed wins.
func (b *yamlBuilder) mapping(n *yaml.Node, p mibig.PathRef) (any, error) {
	m := make(map[string]any, len(n.Content)/2)
	lines := make(map[string]int, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("non-scalar mapping key at line %d", k.Line)
		}
		if k.ShortTag() == "!!merge" {
			merges = append(merges, v)
			continue
		}
		if first, dup := lines[k.Value]; dup {
			b.dups = append(b.dups, p.Field(k.Value).Issue("document", mibig.CodeDuplicateKey,
				fmt.Sprintf("key '%s' duplicated (line %d, first at line %d)", k.Value, k.Line, first),
				"line", k.Line, "firstLine", first))
		} else {
			lines[k.Value] = k.Line
		}
		val, err := b.node(v, p.Field(k.Value))
		if err != nil {
			return nil, err
		}
		m[k.Value] = val
	}
	for _, v := range merges {
		if err := b.merge(m, v, p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (b *yamlBuilder) merge(dst map[string]any, v *yaml.Node, p mibig.PathRef) error {
	src := v
	if src.Kind == yaml.AliasNode && src.Alias != nil {
		src = src.Alias
	}
	switch src.Kind {
	case yaml.MappingNode:
		// duplicates inside the source are reported where it is defined
		val, err := (&yamlBuilder{}).mapping(src, p)
		if err != nil {
			return err
		}
		for key, item := range val.(map[string]any) {
			if _, ok := dst[key]; !ok {
				dst[key] = item
			}
		}
		return nil
	case yaml.SequenceNode:
		for _, c := range src.Content {
			if err := b.merge(dst, c, p); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("merge key at line %d needs a mapping or a list of mappings", v.Line)
}

// scalar resolves the core schema tags; everything else stays textual.
func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var v bool
		err := n.Decode(&v)
		return v, err
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			// out of int64 range; keep the digits rather than lose precision
			return n.Value, nil
		}
		return v, nil
	case "!!float":
		var v float64
		err := n.Decode(&v)
		return v, err
	}
	return n.Value, nil
}
