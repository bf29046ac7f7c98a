package common_test

import (
	"strings"
	"testing"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/common"
)

func TestSubmitterID_Validate(t *testing.T) {
	valid := []string{
		strings.Repeat("a", 24),
		"AbCdEfGhIjKlMnOpQrStUv12",
		"0123456789abcdef01234567",
	}
	for _, v := range valid {
		if iss := common.SubmitterID(v).Validate(nil); len(iss) != 0 {
			t.Fatalf("%q: unexpected issues %v", v, iss)
		}
	}
	cases := []struct {
		in  string
		msg string
	}{
		{"", "invalid length"},
		{strings.Repeat("a", 23), "invalid length"},
		{strings.Repeat("a", 25), "invalid length"},
		{strings.Repeat("a", 23) + "-", "invalid characters"},
		{strings.Repeat("a", 23) + " ", "invalid characters"},
		{strings.Repeat("a", 23) + "é", "invalid characters"},
	}
	for _, tc := range cases {
		iss := common.SubmitterID(tc.in).Validate(nil)
		if len(iss) != 1 || iss[0].Field != "submitter" || iss[0].Message != tc.msg {
			t.Fatalf("%q: expected %q, got %v", tc.in, tc.msg, iss)
		}
	}
}

func TestSubmitterID_FromJSON(t *testing.T) {
	id := strings.Repeat("b", 24)
	s, err := common.SubmitterIDFromJSON(id)
	if err != nil || s.String() != id || s.ToJSON() != id {
		t.Fatalf("from json err=%v s=%q", err, s)
	}
	_, err = common.SubmitterIDFromJSON("short")
	if iss, ok := mibig.AsIssues(err); !ok || !iss.HasField("submitter") {
		t.Fatalf("expected submitter issue, got %v", err)
	}
	if !common.SubmitterID("a").Less("b") {
		t.Fatalf("unexpected ordering")
	}
}
