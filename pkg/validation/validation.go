// Package validation checks a password change draft before it is submitted.
package validation

import (
	"strings"
	"unicode/utf8"
)

// MinLength is the minimum number of characters accepted for a new password.
const MinLength = 8

// Violation messages, in the order they are reported.
const (
	MsgCurrentRequired = "Enter your current password."
	MsgNewRequired     = "Enter a new password."
	MsgNewTooShort     = "New password must be at least 8 characters."
	MsgMismatch        = "New password and confirmation do not match."
	MsgSameAsCurrent   = "New password must be different from the current password."
)

// Draft holds the three field values read at submit time.
type Draft struct {
	Current string
	New     string
	Confirm string
}

// Validate returns every rule the draft violates. Rules are independent, so
// one failure never hides another. An empty confirmation is not a mismatch.
func Validate(d Draft) []string {
	current := strings.TrimSpace(d.Current)
	var errs []string

	if current == "" {
		errs = append(errs, MsgCurrentRequired)
	}
	if d.New == "" {
		errs = append(errs, MsgNewRequired)
	}
	if d.New != "" && utf8.RuneCountInString(d.New) < MinLength {
		errs = append(errs, MsgNewTooShort)
	}
	if d.Confirm != "" && d.New != d.Confirm {
		errs = append(errs, MsgMismatch)
	}
	if current != "" && d.New != "" && current == d.New {
		errs = append(errs, MsgSameAsCurrent)
	}
	return errs
}

// Valid reports whether the draft passes every rule.
func Valid(d Draft) bool {
	return len(Validate(d)) == 0
}
