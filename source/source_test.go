package source_test

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/common"
	"github.com/kblin/go-mibig/source"
)

func TestReadJSON_Tree(t *testing.T) {
	tree, err := source.ReadJSON([]byte(`{"from": 5, "to": 12, "tags": ["a", true, null], "ratio": 0.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := tree.(map[string]any)
	if m["from"] != json.Number("5") {
		t.Fatalf("numbers should be json.Number, got %T", m["from"])
	}
	if n, ok := mibig.AsInt(m["to"]); !ok || n != 12 {
		t.Fatalf("AsInt on decoded number failed")
	}
	tags := m["tags"].([]any)
	if len(tags) != 3 || tags[0] != "a" || tags[1] != true || tags[2] != nil {
		t.Fatalf("unexpected list: %v", tags)
	}
	if _, ok := mibig.AsInt(m["ratio"]); ok {
		t.Fatalf("fractions are not integers")
	}
}

func TestReadJSON_DuplicateKeys(t *testing.T) {
	tree, err := source.ReadJSON([]byte(`{"a": 1, "b": {"c": 1, "c": 2}, "a": 3}`))
	iss, ok := mibig.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two duplicate issues, got %v", err)
	}
	if iss[0].Path != "/b/c" || iss[1].Path != "/a" || iss[0].Code != mibig.CodeDuplicateKey {
		t.Fatalf("unexpected issues: %v", iss)
	}
	m := tree.(map[string]any)
	if m["a"] != json.Number("3") {
		t.Fatalf("last value wins, got %v", m["a"])
	}
}

func TestReadJSON_ParseErrors(t *testing.T) {
	docs := []string{
		`{"a": }`, `{"a": 1`, `[1, 2] 3`, ``, `   `,
		`{"a" 1}`, `{"a":1 "b":2}`, `{"a":1]`, `[1 2]`, `{"a":1:"b":2}`, `[1,]`,
	}
	for _, doc := range docs {
		tree, err := source.ReadJSON([]byte(doc))
		iss, ok := mibig.AsIssues(err)
		if !ok || len(iss) != 1 || iss[0].Code != mibig.CodeParseError {
			t.Fatalf("%q: expected a parse error, got %v", doc, err)
		}
		if tree != nil {
			t.Fatalf("%q: no tree on parse errors", doc)
		}
	}
}

func TestReadJSON_MalformedLocationRejected(t *testing.T) {
	for _, doc := range []string{`{"from" 1 "to" 3}`, `{"from":1 "to":3}`, `{"from":1,"to":3]`, `{"from":1:"to":3}`} {
		tree, err := source.ReadJSON([]byte(doc))
		if err == nil {
			t.Fatalf("%q: accepted as %v", doc, tree)
		}
		if _, ok := mibig.AsIssues(err); !ok {
			t.Fatalf("%q: expected issues, got %v", doc, err)
		}
	}
}

func TestReadJSONReader_ReadError(t *testing.T) {
	_, err := source.ReadJSONReader(iotest.ErrReader(errors.New("boom")))
	if err == nil {
		t.Fatalf("expected read error")
	}
	if _, ok := mibig.AsIssues(err); ok {
		t.Fatalf("read failures are not document issues: %v", err)
	}
}

func TestEqual(t *testing.T) {
	a, _ := source.ReadJSON([]byte(`{"b": [1, 2], "a": "x"}`))
	b := map[string]any{"a": "x", "b": []any{1, int64(2)}}
	eq, err := source.Equal(a, b)
	if err != nil || !eq {
		t.Fatalf("expected equal trees: %v", err)
	}
	c := map[string]any{"a": "x", "b": []any{2, 1}}
	if eq, _ := source.Equal(a, c); eq {
		t.Fatalf("list order matters")
	}
}

func TestMarshal_SortedKeys(t *testing.T) {
	out, err := source.Marshal(map[string]any{"to": 2, "from": 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Index(string(out), "from") > strings.Index(string(out), "to") {
		t.Fatalf("keys should be sorted: %s", out)
	}
}

func TestReadYAML(t *testing.T) {
	doc := `
from: 5
to: 12
date: 2024-01-02
references:
  - pubmed:1
specificity: ~
`
	tree, err := source.ReadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := tree.(map[string]any)
	if m["from"] != int64(5) {
		t.Fatalf("ints should be int64, got %T", m["from"])
	}
	if m["date"] != "2024-01-02" {
		t.Fatalf("dates stay textual, got %T %v", m["date"], m["date"])
	}
	if v, ok := m["specificity"]; !ok || v != nil {
		t.Fatalf("null should be kept as nil")
	}
	if refs := m["references"].([]any); refs[0] != "pubmed:1" {
		t.Fatalf("unexpected references: %v", refs)
	}
}

func TestReadYAML_DuplicateKey(t *testing.T) {
	tree, err := source.ReadYAML(strings.NewReader("a: 1\nb:\n  c: 2\n  c: 3\na: 4\n"))
	iss, ok := mibig.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two duplicate issues, got %v", err)
	}
	if iss[0].Path != "/b/c" || iss[1].Path != "/a" || iss[1].Code != mibig.CodeDuplicateKey {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if iss[1].Params["line"] != 5 || iss[1].Params["firstLine"] != 1 {
		t.Fatalf("unexpected positions: %v", iss[1].Params)
	}
	if m := tree.(map[string]any); m["a"] != int64(4) {
		t.Fatalf("last value wins, got %v", m["a"])
	}
}

func TestReadYAML_ParseErrors(t *testing.T) {
	for _, doc := range []string{"", "a: [1, 2\n", "*missing\n"} {
		_, err := source.ReadYAML(strings.NewReader(doc))
		iss, ok := mibig.AsIssues(err)
		if !ok || len(iss) != 1 || iss[0].Code != mibig.CodeParseError {
			t.Fatalf("%q: expected a parse error, got %v", doc, err)
		}
	}
}

func TestReadYAML_MergeKeys(t *testing.T) {
	doc := `
base: &base
  from: 1
  to: 3
extra: &extra
  to: 9
  note: x
loc:
  <<: *base
single:
  to: 7
  <<: *base
multi:
  <<: [*extra, *base]
inline:
  <<: {from: 4, to: 5}
`
	tree, err := source.ReadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := tree.(map[string]any)
	cases := []struct {
		key      string
		from, to int64
	}{
		{"loc", 1, 3},
		{"single", 1, 7},
		{"multi", 1, 9},
		{"inline", 4, 5},
	}
	for _, tc := range cases {
		got := m[tc.key].(map[string]any)
		if _, ok := got["<<"]; ok {
			t.Fatalf("%s: merge key left in the tree: %v", tc.key, got)
		}
		if got["from"] != tc.from || got["to"] != tc.to {
			t.Fatalf("%s: got %v", tc.key, got)
		}
	}
	if m["multi"].(map[string]any)["note"] != "x" {
		t.Fatalf("keys from every merge source are kept: %v", m["multi"])
	}
	loc, err := common.LocationFromJSON(m["loc"], nil)
	if err != nil || loc.Begin != 1 || loc.End != 3 {
		t.Fatalf("merged location: %v %v", loc, err)
	}
}

func TestReadYAML_BadMerge(t *testing.T) {
	_, err := source.ReadYAML(strings.NewReader("a:\n  <<: 5\n"))
	iss, ok := mibig.AsIssues(err)
	if !ok || iss[0].Code != mibig.CodeParseError {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestYAMLReader_MultiDoc(t *testing.T) {
	r := source.NewYAMLReader(strings.NewReader("a: 1\n---\nb: 2\n"))
	var docs []any
	for {
		v, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		docs = append(docs, v)
	}
	if len(docs) != 2 {
		t.Fatalf("expected two documents, got %v", docs)
	}
	if docs[1].(map[string]any)["b"] != int64(2) {
		t.Fatalf("unexpected second document: %v", docs[1])
	}
}
