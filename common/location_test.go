package common_test

import (
	"encoding/json"
	"strings"
	"testing"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/common"
)

type fakeCDS struct{ n int }

func (c fakeCDS) TranslationLength() int { return c.n }

type fakeRecord struct {
	seqLen int
	genes  map[string]fakeCDS
}

func (r fakeRecord) SeqLen() int { return r.seqLen }
func (r fakeRecord) CDS(id string) (mibig.CDS, bool) {
	c, ok := r.genes[id]
	return c, ok
}

func TestLocation_Validate(t *testing.T) {
	rec := fakeRecord{seqLen: 100}
	cases := []struct {
		name   string
		loc    common.Location
		vc     *mibig.Context
		fields []string
	}{
		{"ok", common.Location{Begin: 0, End: 10}, nil, nil},
		{"equal bounds", common.Location{Begin: 7, End: 7}, nil, nil},
		{"negative from", common.Location{Begin: -1, End: 10}, nil, []string{"Location.from"}},
		{"negative both", common.Location{Begin: -5, End: -1}, nil, []string{"Location.from", "Location.to"}},
		{"reversed", common.Location{Begin: 5, End: 3}, nil, []string{"Location"}},
		{"questionable negative", common.Location{Begin: -1, End: 10}, mibig.NewContext().WithQuality(mibig.QualityQuestionable), nil},
		{"questionable reversed", common.Location{Begin: 5, End: 3}, mibig.NewContext().WithQuality(mibig.QualityQuestionable), []string{"Location"}},
		{"beyond record", common.Location{Begin: 90, End: 101}, mibig.NewContext().WithRecord(rec), []string{"Location.to"}},
		{"beyond record questionable", common.Location{Begin: 150, End: 160}, mibig.NewContext().WithRecord(rec).WithQuality(mibig.QualityQuestionable), nil},
		{"at record end", common.Location{Begin: 90, End: 100}, mibig.NewContext().WithRecord(rec).WithQuality(mibig.QualityHigh), nil},
		{"beyond translation", common.Location{Begin: 1, End: 51}, mibig.NewContext().WithCDS(fakeCDS{n: 50}), []string{"Location.to"}},
		{"beyond translation questionable", common.Location{Begin: 1, End: 51}, mibig.NewContext().WithCDS(fakeCDS{n: 50}).WithQuality(mibig.QualityQuestionable), []string{"Location.to"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iss := tc.loc.Validate(tc.vc)
			if len(iss) != len(tc.fields) {
				t.Fatalf("expected %d issues, got %v", len(tc.fields), iss)
			}
			for i, f := range tc.fields {
				if iss[i].Field != f {
					t.Fatalf("issue %d: expected field %s, got %s", i, f, iss[i].Field)
				}
			}
		})
	}
}

func TestLocation_ReversedMessage(t *testing.T) {
	_, err := mibig.Build(common.Location{Begin: 5, End: 3}, nil)
	iss, ok := mibig.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if !strings.Contains(iss[0].Message, "must be less than") {
		t.Fatalf("unexpected message: %s", iss[0].Message)
	}
}

func TestLocation_FromJSON(t *testing.T) {
	l, err := common.LocationFromJSON(map[string]any{"from": json.Number("3"), "to": json.Number("12")}, nil)
	if err != nil {
		t.Fatalf("from json err: %v", err)
	}
	if l.Begin != 3 || l.End != 12 {
		t.Fatalf("unexpected location: %+v", l)
	}
	out := l.ToJSON().(map[string]any)
	if out["from"] != 3 || out["to"] != 12 {
		t.Fatalf("unexpected json: %v", out)
	}
}

func TestLocation_FromJSON_TypeErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		path string
		code string
	}{
		{"not an object", []any{1, 2}, "/", mibig.CodeInvalidType},
		{"string from", map[string]any{"from": "1", "to": 2}, "/from", mibig.CodeInvalidType},
		{"float to", map[string]any{"from": 1, "to": json.Number("2.5")}, "/to", mibig.CodeInvalidType},
		{"integral float", map[string]any{"from": 1.0, "to": 2}, "/from", mibig.CodeInvalidType},
		{"missing to", map[string]any{"from": 1}, "/to", mibig.CodeRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := common.DecodeLocation(tc.raw)
			iss, ok := mibig.AsIssues(err)
			if !ok || len(iss) != 1 {
				t.Fatalf("expected one issue, got %v", err)
			}
			if iss[0].Path != tc.path || iss[0].Code != tc.code {
				t.Fatalf("expected %s at %s, got %s at %s", tc.code, tc.path, iss[0].Code, iss[0].Path)
			}
		})
	}
}

func TestLocation_FromJSON_ValidationFailure(t *testing.T) {
	_, err := common.LocationFromJSON(map[string]any{"from": 10, "to": 2}, nil)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	l, err := common.LocationFromJSON(map[string]any{"from": -10, "to": 2}, mibig.NewContext().WithQuality(mibig.QualityQuestionable))
	if err != nil || l.Begin != -10 {
		t.Fatalf("questionable location should pass, err=%v", err)
	}
}
