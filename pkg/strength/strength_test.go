package strength_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-passchange/pkg/strength"
)

func TestEvaluate_Criteria(t *testing.T) {
	cases := []struct {
		name      string
		password  string
		wantScore int
		wantLabel strength.Label
		wantMet   []strength.Criterion
	}{
		{name: "empty", password: "", wantScore: 0, wantLabel: strength.LabelNone},
		{name: "short lowercase", password: "abc", wantScore: 0, wantLabel: strength.LabelWeak, wantMet: []strength.Criterion{}},
		{name: "digit only", password: "123", wantScore: 20, wantLabel: strength.LabelWeak, wantMet: []strength.Criterion{strength.CriterionDigit}},
		{
			name:      "eight lowercase",
			password:  "abcdefgh",
			wantScore: 20,
			wantLabel: strength.LabelWeak,
			wantMet:   []strength.Criterion{strength.CriterionLength8},
		},
		{
			name:      "mixed case with digit",
			password:  "oldPass1",
			wantScore: 60,
			wantLabel: strength.LabelOkay,
			wantMet:   []strength.Criterion{strength.CriterionLength8, strength.CriterionMixedCase, strength.CriterionDigit},
		},
		{
			name:      "everything",
			password:  "NewPass123!xy",
			wantScore: 100,
			wantLabel: strength.LabelStrong,
			wantMet:   strength.Criteria,
		},
		{
			name:      "short but varied",
			password:  "aB3$",
			wantScore: 60,
			wantLabel: strength.LabelOkay,
			wantMet:   []strength.Criterion{strength.CriterionMixedCase, strength.CriterionDigit, strength.CriterionSymbol},
		},
		{
			name:      "non ascii letters count as symbols",
			password:  "contraseña",
			wantScore: 40,
			wantLabel: strength.LabelWeak,
			wantMet:   []strength.Criterion{strength.CriterionLength8, strength.CriterionSymbol},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := strength.Evaluate(tc.password)
			if got.Score != tc.wantScore {
				t.Fatalf("score: want %d, got %d", tc.wantScore, got.Score)
			}
			if got.Label != tc.wantLabel {
				t.Fatalf("label: want %q, got %q", tc.wantLabel, got.Label)
			}
			if tc.wantMet == nil {
				return
			}
			if diff := cmp.Diff(tc.wantMet, got.Met); diff != "" {
				t.Fatalf("criteria mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluate_LengthCountsRunes(t *testing.T) {
	// seven runes, fourteen bytes
	got := strength.Evaluate("ééééééé")
	for _, c := range got.Met {
		if c == strength.CriterionLength8 {
			t.Fatalf("seven runes must not satisfy the length rule")
		}
	}
}

func TestEvaluate_MonotonicAndBounded(t *testing.T) {
	// each step satisfies one more criterion than the previous one
	steps := []string{
		"a",
		"abcdefgh",
		"abcdefghijkl",
		"abcdefghijkL",
		"abcdefghijL1",
		"abcdefghiL1!",
	}
	prev := -1
	for _, pw := range steps {
		got := strength.Evaluate(pw)
		if got.Score < 0 || got.Score > strength.MaxScore {
			t.Fatalf("%q: score %d out of range", pw, got.Score)
		}
		if got.Score < prev {
			t.Fatalf("%q: score decreased from %d to %d", pw, prev, got.Score)
		}
		prev = got.Score
	}
	if prev != strength.MaxScore {
		t.Fatalf("expected final step to reach %d, got %d", strength.MaxScore, prev)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	for _, pw := range []string{"", "x", "NewPass123!", "contraseña segura 9"} {
		first := strength.Evaluate(pw)
		second := strength.Evaluate(pw)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%q: results differ (-first +second):\n%s", pw, diff)
		}
	}
}

func TestLabelFor_Boundaries(t *testing.T) {
	cases := map[int]strength.Label{
		0:   strength.LabelWeak,
		49:  strength.LabelWeak,
		50:  strength.LabelOkay,
		79:  strength.LabelOkay,
		80:  strength.LabelStrong,
		100: strength.LabelStrong,
	}
	for score, want := range cases {
		if got := strength.LabelFor(score); got != want {
			t.Fatalf("LabelFor(%d): want %q, got %q", score, want, got)
		}
	}
}

func TestEstimate_Text(t *testing.T) {
	if got := strength.Evaluate("").Text(); got != "Strength: —" {
		t.Fatalf("unexpected placeholder caption %q", got)
	}
	if got := strength.Evaluate("NewPass123!").Text(); got != "Strength: Strong" {
		t.Fatalf("unexpected caption %q", got)
	}
}
