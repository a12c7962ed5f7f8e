// Package strength scores a password draft against five independent criteria
// (length of at least 8, length of at least 12, mixed letter case, a digit and a
// symbol) and maps the normalised percentage onto the Weak/Okay/Strong labels
// rendered by the form's strength indicator. Evaluation is pure: the same draft
// always yields the same Estimate, and nothing is remembered between calls.
// Indicator colours are resolved through a Palette so front ends can source
// them from a go-theme manifest instead of hard-coding CSS.
package strength
