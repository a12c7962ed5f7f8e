package html

import (
	"errors"

	"github.com/goliatone/go-passchange/pkg/form"
	"github.com/goliatone/go-passchange/pkg/strength"
)

// Fragments is the rendered state of every output region.
type Fragments struct {
	Errors         string
	Result         string
	Strength       string
	SubmitDisabled bool
}

// View implements form.View for server side rendering: field values come from
// a posted form and every region is kept as an HTML fragment ready to be
// swapped into the page.
type View struct {
	renderer *Renderer

	current string
	newPw   string
	confirm string

	fragments Fragments
	errs      []error
}

var _ form.View = (*View)(nil)

// NewView seeds the fields with the submitted values.
func NewView(renderer *Renderer, current, newPassword, confirm string) *View {
	return &View{
		renderer: renderer,
		current:  current,
		newPw:    newPassword,
		confirm:  confirm,
	}
}

func (v *View) Current() string { return v.current }
func (v *View) New() string     { return v.newPw }
func (v *View) Confirm() string { return v.confirm }

func (v *View) Reset() {
	v.current, v.newPw, v.confirm = "", "", ""
}

func (v *View) ShowErrors(messages []string) {
	out, err := v.renderer.Errors(messages)
	v.record(err)
	v.fragments.Errors = out
}

func (v *View) ClearErrors() { v.fragments.Errors = "" }

func (v *View) ShowResult(result form.Result) {
	out, err := v.renderer.Result(result)
	v.record(err)
	v.fragments.Result = out
}

func (v *View) ClearResult() { v.fragments.Result = "" }

func (v *View) ShowStrength(ind strength.Indicator) {
	out, err := v.renderer.StrengthBar(ind)
	v.record(err)
	v.fragments.Strength = out
}

func (v *View) SetSubmitEnabled(enabled bool) {
	v.fragments.SubmitDisabled = !enabled
}

// Fragments returns the current markup of every region.
func (v *View) Fragments() Fragments {
	return v.fragments
}

// Err reports template failures collected while rendering.
func (v *View) Err() error {
	return errors.Join(v.errs...)
}

func (v *View) record(err error) {
	if err != nil {
		v.errs = append(v.errs, err)
	}
}
