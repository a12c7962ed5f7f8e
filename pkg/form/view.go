package form

import "github.com/goliatone/go-passchange/pkg/strength"

// Fields exposes the three password inputs.
type Fields interface {
	Current() string
	New() string
	Confirm() string
	// Reset clears every field.
	Reset()
}

// ErrorRegion displays validation violations.
type ErrorRegion interface {
	ShowErrors(messages []string)
	ClearErrors()
}

// Tone selects how a result message is presented.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneError   Tone = "error"
)

// Result is the text written to the result region after a submit.
type Result struct {
	Text string
	Tone Tone
}

// ResultRegion displays the outcome of a submission.
type ResultRegion interface {
	ShowResult(result Result)
	ClearResult()
}

// StrengthIndicator renders the strength meter.
type StrengthIndicator interface {
	ShowStrength(indicator strength.Indicator)
}

// SubmitControl toggles the submit affordance.
type SubmitControl interface {
	SetSubmitEnabled(enabled bool)
}

// View is everything the controller reads from and writes to. Implementations
// own markup and styling; the controller only moves values.
type View interface {
	Fields
	ErrorRegion
	ResultRegion
	StrengthIndicator
	SubmitControl
}
