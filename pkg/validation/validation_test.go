package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-passchange/pkg/validation"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		draft validation.Draft
		want  []string
	}{
		{
			name:  "valid change",
			draft: validation.Draft{Current: "oldPass1", New: "NewPass123!", Confirm: "NewPass123!"},
			want:  nil,
		},
		{
			name:  "too short only",
			draft: validation.Draft{Current: "x", New: "short", Confirm: "short"},
			want:  []string{validation.MsgNewTooShort},
		},
		{
			name:  "everything empty",
			draft: validation.Draft{},
			want:  []string{validation.MsgCurrentRequired, validation.MsgNewRequired},
		},
		{
			name:  "whitespace current counts as missing",
			draft: validation.Draft{Current: "   ", New: "NewPass123!", Confirm: "NewPass123!"},
			want:  []string{validation.MsgCurrentRequired},
		},
		{
			name:  "mismatch",
			draft: validation.Draft{Current: "oldPass1", New: "NewPass123!", Confirm: "NewPass124!"},
			want:  []string{validation.MsgMismatch},
		},
		{
			name:  "empty confirm tolerated",
			draft: validation.Draft{Current: "oldPass1", New: "NewPass123!"},
			want:  nil,
		},
		{
			name:  "confirm without new password",
			draft: validation.Draft{Current: "oldPass1", Confirm: "NewPass123!"},
			want:  []string{validation.MsgNewRequired, validation.MsgMismatch},
		},
		{
			name:  "same as current",
			draft: validation.Draft{Current: "oldPass12", New: "oldPass12", Confirm: "oldPass12"},
			want:  []string{validation.MsgSameAsCurrent},
		},
		{
			name:  "rules are collected not short-circuited",
			draft: validation.Draft{Current: "abc", New: "abc", Confirm: "abd"},
			want:  []string{validation.MsgNewTooShort, validation.MsgMismatch, validation.MsgSameAsCurrent},
		},
		{
			name:  "current compared after trimming",
			draft: validation.Draft{Current: " samePass1 ", New: "samePass1", Confirm: "samePass1"},
			want:  []string{validation.MsgSameAsCurrent},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.Validate(tc.draft)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("violations mismatch (-want +got):\n%s", diff)
			}
			if validation.Valid(tc.draft) != (len(tc.want) == 0) {
				t.Fatalf("Valid disagrees with Validate")
			}
		})
	}
}

func TestValidate_RejectsShortPasswords(t *testing.T) {
	for n := 0; n < validation.MinLength; n++ {
		pw := strings.Repeat("a", n)
		if got := validation.Validate(validation.Draft{Current: "current", New: pw, Confirm: pw}); len(got) == 0 {
			t.Fatalf("length %d: expected a violation", n)
		}
	}
}

func TestValidate_MismatchReported(t *testing.T) {
	pairs := [][2]string{
		{"NewPass123!", "x"},
		{"short", "shorter"},
		{"", "something"},
	}
	for _, p := range pairs {
		got := validation.Validate(validation.Draft{Current: "current", New: p[0], Confirm: p[1]})
		if !contains(got, validation.MsgMismatch) {
			t.Fatalf("%q/%q: expected mismatch message, got %v", p[0], p[1], got)
		}
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
