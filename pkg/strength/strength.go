package strength

import (
	"fmt"
	"unicode/utf8"
)

// Label is the human readable tier shown next to the indicator.
type Label string

const (
	LabelWeak   Label = "Weak"
	LabelOkay   Label = "Okay"
	LabelStrong Label = "Strong"
	// LabelNone is the placeholder shown while the draft is empty.
	LabelNone Label = "—"
)

// Tier selects the indicator colour.
type Tier string

const (
	TierBad  Tier = "bad"
	TierOkay Tier = "okay"
	TierGood Tier = "good"
)

// Criterion identifies one scoring rule.
type Criterion string

const (
	CriterionLength8   Criterion = "length>=8"
	CriterionLength12  Criterion = "length>=12"
	CriterionMixedCase Criterion = "mixed-case"
	CriterionDigit     Criterion = "digit"
	CriterionSymbol    Criterion = "symbol"
)

// Criteria lists every scoring rule in evaluation order.
var Criteria = []Criterion{
	CriterionLength8,
	CriterionLength12,
	CriterionMixedCase,
	CriterionDigit,
	CriterionSymbol,
}

const (
	// StrongThreshold is the inclusive lower bound for LabelStrong.
	StrongThreshold = 80
	// OkayThreshold is the inclusive lower bound for LabelOkay.
	OkayThreshold = 50
	// MaxScore is the upper bound of Estimate.Score.
	MaxScore = 100
)

// Estimate is the derived strength of a single draft.
type Estimate struct {
	Score int
	Label Label
	Tier  Tier
	Met   []Criterion
}

// Empty reports whether the estimate was computed for an empty draft.
func (e Estimate) Empty() bool {
	return e.Label == LabelNone
}

// Text returns the caption rendered under the indicator.
func (e Estimate) Text() string {
	return fmt.Sprintf("Strength: %s", e.Label)
}

// Evaluate scores password. Lengths count code points, not bytes.
func Evaluate(password string) Estimate {
	if password == "" {
		return Estimate{Score: 0, Label: LabelNone, Tier: TierBad}
	}

	met := make([]Criterion, 0, len(Criteria))
	length := utf8.RuneCountInString(password)
	if length >= 8 {
		met = append(met, CriterionLength8)
	}
	if length >= 12 {
		met = append(met, CriterionLength12)
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	if lower && upper {
		met = append(met, CriterionMixedCase)
	}
	if digit {
		met = append(met, CriterionDigit)
	}
	if symbol {
		met = append(met, CriterionSymbol)
	}

	score := min(MaxScore, len(met)*MaxScore/len(Criteria))
	return Estimate{
		Score: score,
		Label: LabelFor(score),
		Tier:  TierFor(score),
		Met:   met,
	}
}

// LabelFor maps a percentage onto its label. Both thresholds are inclusive.
func LabelFor(score int) Label {
	switch {
	case score >= StrongThreshold:
		return LabelStrong
	case score >= OkayThreshold:
		return LabelOkay
	default:
		return LabelWeak
	}
}

// TierFor maps a percentage onto the colour tier used by the indicator.
func TierFor(score int) Tier {
	switch {
	case score >= StrongThreshold:
		return TierGood
	case score >= OkayThreshold:
		return TierOkay
	default:
		return TierBad
	}
}
