package codec_test

import (
	"testing"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/codec"
)

func TestTagged_SplitsOnFirstColonOnly(t *testing.T) {
	c := codec.Tagged()
	tv, err := c.Decode("url:https://example.org:8080/a")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if tv.Tag != "url" || tv.Value != "https://example.org:8080/a" {
		t.Fatalf("unexpected split: %+v", tv)
	}
	s, err := c.Encode(tv)
	if err != nil || s != "url:https://example.org:8080/a" {
		t.Fatalf("encode err=%v s=%q", err, s)
	}
}

func TestTagged_MissingColon(t *testing.T) {
	_, err := codec.Tagged().Decode("pubmed12345")
	iss, ok := mibig.AsIssues(err)
	if !ok || iss[0].Code != mibig.CodeInvalidFormat {
		t.Fatalf("expected invalid_format issue, got %v", err)
	}
}

func TestText_DecodeText(t *testing.T) {
	type smiles string
	v, err := codec.DecodeText[smiles]("CCO", "Smiles")
	if err != nil || v != "CCO" {
		t.Fatalf("decode err=%v v=%q", err, v)
	}
	if _, err := codec.DecodeText[smiles](42, "Smiles"); err == nil {
		t.Fatalf("expected invalid_type for non-string input")
	}
	s, err := codec.Text[smiles]().Encode(v)
	if err != nil || s != "CCO" {
		t.Fatalf("encode err=%v s=%q", err, s)
	}
}
