package strength

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Palette token names looked up in a theme manifest.
const (
	TokenGood  = "strength.good"
	TokenOkay  = "strength.okay"
	TokenBad   = "strength.bad"
	TokenTrack = "strength.track"
)

// Palette holds the colours used to paint the indicator.
type Palette struct {
	Good  string
	Okay  string
	Bad   string
	Track string
}

// DefaultPalette references the CSS variables declared by the stock page.
func DefaultPalette() Palette {
	return Palette{
		Good:  "var(--good)",
		Okay:  "var(--okay)",
		Bad:   "var(--bad)",
		Track: "rgba(255,255,255,0.06)",
	}
}

// DefaultManifest is the built-in theme: CSS variables for the base tokens and
// literal colours for terminals and the high-contrast variant.
func DefaultManifest() *theme.Manifest {
	base := DefaultPalette()
	return &theme.Manifest{
		Name:    "passchange",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenGood:  base.Good,
			TokenOkay:  base.Okay,
			TokenBad:   base.Bad,
			TokenTrack: base.Track,
		},
		Variants: map[string]theme.Variant{
			"high-contrast": {
				Tokens: map[string]string{
					TokenGood:  "#00a651",
					TokenOkay:  "#ffb000",
					TokenBad:   "#d0021b",
					TokenTrack: "#ffffff",
				},
			},
		},
	}
}

// PaletteFromManifest resolves palette tokens from manifest, applying the
// variant overrides when the variant exists. Missing tokens keep the defaults.
func PaletteFromManifest(manifest *theme.Manifest, variant string) Palette {
	palette := DefaultPalette()
	if manifest == nil {
		return palette
	}
	palette = palette.apply(manifest.Tokens)
	if name := strings.TrimSpace(variant); name != "" {
		if v, ok := manifest.Variants[name]; ok {
			palette = palette.apply(v.Tokens)
		}
	}
	return palette
}

func (p Palette) apply(tokens map[string]string) Palette {
	set := func(dst *string, key string) {
		if value := strings.TrimSpace(tokens[key]); value != "" {
			*dst = value
		}
	}
	set(&p.Good, TokenGood)
	set(&p.Okay, TokenOkay)
	set(&p.Bad, TokenBad)
	set(&p.Track, TokenTrack)
	return p
}

// Color returns the colour for tier.
func (p Palette) Color(tier Tier) string {
	switch tier {
	case TierGood:
		return p.Good
	case TierOkay:
		return p.Okay
	default:
		return p.Bad
	}
}

// Indicator is the externally observable state of the strength meter: how much
// of the bar is filled, with which colour, and the caption underneath.
type Indicator struct {
	Fill  int
	Tier  Tier
	Color string
	Track string
	Label Label
	Text  string
}

// NewIndicator projects an estimate onto a palette.
func NewIndicator(e Estimate, p Palette) Indicator {
	return Indicator{
		Fill:  e.Score,
		Tier:  e.Tier,
		Color: p.Color(e.Tier),
		Track: p.Track,
		Label: e.Label,
		Text:  e.Text(),
	}
}
