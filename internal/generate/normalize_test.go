package generate

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeRoundTripThroughFenceAndCommentary(t *testing.T) {
	original := GeneratedPortfolio{
		Summary: "Backend engineer with a storage focus.",
		Skills:  []string{"Go", "SQL"},
		Experience: []ExperienceEntry{
			{Company: "Acme", Role: "Engineer", Duration: "2020-2024", Points: []string{"Shipped the billing service"}},
		},
		Projects: []ProjectEntry{
			{Name: "Tool X", Tech: []string{"Go"}, Description: "A CLI built in Go"},
		},
	}
	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	raw := "Here is the portfolio you asked for:\n```json\n" + string(payload) + "\n```\nLet me know if you need changes."
	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, original)
	}
}

func TestNormalizeFencedObjectWithTrailingCommentary(t *testing.T) {
	raw := "```json\n{\"summary\":\"ok\",\"skills\":[]}\n```"
	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Summary != "ok" {
		t.Fatalf("expected summary ok, got %q", got.Summary)
	}
	if got.Skills == nil || len(got.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %#v", got.Skills)
	}
}

func TestNormalizePlainProseFails(t *testing.T) {
	_, err := Normalize("I am sorry, I cannot produce a portfolio right now.")
	if !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestNormalizeBracesInsideStringValues(t *testing.T) {
	raw := `{"summary":"uses {braces} and } inside strings","skills":["Go"]}`
	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Summary != "uses {braces} and } inside strings" {
		t.Fatalf("summary mangled: %q", got.Summary)
	}
}

func TestNormalizePicksFirstBalancedObject(t *testing.T) {
	// The greedy first-{-to-last-} substring would span both objects and fail
	// to parse; the scanner must stop at the first balanced region.
	raw := `{"summary":"first","skills":[]} trailing text {"unrelated":true}`
	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Summary != "first" {
		t.Fatalf("expected first object, got summary %q", got.Summary)
	}
}

func TestNormalizeEscapedQuotesInStrings(t *testing.T) {
	raw := `{"summary":"said \"hello {\" once","skills":[]}`
	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Summary != `said "hello {" once` {
		t.Fatalf("summary mangled: %q", got.Summary)
	}
}

func TestExtractObjectUnbalancedFallsBackToGreedy(t *testing.T) {
	if _, ok := extractObject(`{"a": 1`); ok {
		t.Fatalf("scanner should not find a balanced region")
	}
	got, ok := extractGreedy(`noise {"a": 1} noise`)
	if !ok || got != `{"a": 1}` {
		t.Fatalf("greedy extraction failed, got %q ok=%v", got, ok)
	}
}
