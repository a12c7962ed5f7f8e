// Package html renders the boundary markup of the password change page: the
// error list, the strength bar with its inline gradient, and the result line.
// Fragments are produced with pongo2 templates; server supplied result text is
// passed through a strict bluemonday policy before it reaches the page.
package html

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-passchange/pkg/form"
	"github.com/goliatone/go-passchange/pkg/strength"
)

const (
	templateErrors   = "errors.tpl"
	templateStrength = "strength.tpl"
	templateResult   = "result.tpl"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Renderer turns controller state into HTML fragments.
type Renderer struct {
	palette   strength.Palette
	templates map[string]*pongo2.Template
}

// Option configures the Renderer.
type Option func(*config)

type config struct {
	palette   strength.Palette
	templates fs.FS
}

// WithPalette sets the colours used for the bar and error text.
func WithPalette(p strength.Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithTemplatesFS overrides the embedded templates. The FS must contain
// errors.tpl, strength.tpl and result.tpl at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(c *config) {
		if files != nil {
			c.templates = files
		}
	}
}

// New compiles the fragment templates.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{
		palette:   strength.DefaultPalette(),
		templates: TemplatesFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	set := pongo2.NewSet("passchange", pongo2.NewFSLoader(cfg.templates))
	r := &Renderer{
		palette:   cfg.palette,
		templates: make(map[string]*pongo2.Template, 3),
	}
	for _, name := range []string{templateErrors, templateStrength, templateResult} {
		tpl, err := set.FromFile(name)
		if err != nil {
			return nil, fmt.Errorf("html: load template %q: %w", name, err)
		}
		r.templates[name] = tpl
	}
	return r, nil
}

// Errors renders one "• message" row per violation.
func (r *Renderer) Errors(messages []string) (string, error) {
	if len(messages) == 0 {
		return "", nil
	}
	return r.execute(templateErrors, pongo2.Context{"errors": messages})
}

// StrengthBar renders the meter and caption for ind.
func (r *Renderer) StrengthBar(ind strength.Indicator) (string, error) {
	return r.execute(templateStrength, pongo2.Context{
		"tier":  string(ind.Tier),
		"fill":  ind.Fill,
		"color": ind.Color,
		"track": ind.Track,
		"text":  ind.Text,
	})
}

// Result renders the submission result. Error tone paints the text with the
// palette's bad colour.
func (r *Renderer) Result(result form.Result) (string, error) {
	if strings.TrimSpace(result.Text) == "" {
		return "", nil
	}
	ctx := pongo2.Context{
		"tone":    string(result.Tone),
		"message": SanitizeText(result.Text),
	}
	if result.Tone == form.ToneError {
		ctx["error_color"] = r.palette.Bad
	}
	return r.execute(templateResult, ctx)
}

func (r *Renderer) execute(name string, ctx pongo2.Context) (string, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("html: template %q not loaded", name)
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("html: execute %q: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}

// SanitizeText strips every tag from text and escapes what remains, so remote
// messages cannot inject markup into the result region.
func SanitizeText(text string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(text))
}
