// Package form coordinates the password change form: it recomputes the
// strength indicator as the new password changes and runs one validated
// submission per user action against an injected view.
package form

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/samber/oops"

	"github.com/goliatone/go-passchange/internal/errutil"
	"github.com/goliatone/go-passchange/pkg/strength"
	"github.com/goliatone/go-passchange/pkg/submit"
	"github.com/goliatone/go-passchange/pkg/validation"
)

// Error codes for controller failures.
const (
	CodeValidation = "validation_failed"
	CodeInFlight   = "submit_in_flight"
	CodePanic      = "controller_panic"
)

var (
	// ErrValidation is returned when the draft fails local validation.
	ErrValidation = errors.New("form: validation failed")
	// ErrInFlight is returned when a submission is already running.
	ErrInFlight = errors.New("form: submission already in flight")
)

// Submitter performs the network round trip.
type Submitter interface {
	Submit(ctx context.Context, payload submit.Payload) submit.Outcome
}

// Controller is bound to one view for its whole lifetime.
type Controller struct {
	view      View
	submitter Submitter
	palette   strength.Palette
	logger    *slog.Logger
	inFlight  atomic.Bool
}

// New binds a controller to view and submitter.
func New(view View, submitter Submitter, options ...Option) (*Controller, error) {
	if view == nil {
		return nil, errors.New("form: view is required")
	}
	if submitter == nil {
		return nil, errors.New("form: submitter is required")
	}

	c := &Controller{
		view:      view,
		submitter: submitter,
		palette:   strength.DefaultPalette(),
		logger:    slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// UpdateStrength re-estimates the new password and pushes the indicator to
// the view. Call it on every change of the new password field.
func (c *Controller) UpdateStrength() strength.Estimate {
	estimate := strength.Evaluate(c.view.New())
	c.view.ShowStrength(strength.NewIndicator(estimate, c.palette))
	return estimate
}

// Submit runs one submission cycle. Local violations are shown and reported as
// ErrValidation without contacting the network. Remote rejections and
// transport failures are shown in the result region and reported only through
// the returned Outcome. The submit control is re-enabled exactly once on every
// path that disabled it, including panics raised by the view or submitter.
func (c *Controller) Submit(ctx context.Context) (outcome submit.Outcome, err error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return submit.Outcome{}, oops.Code(CodeInFlight).Wrap(ErrInFlight)
	}

	defer c.inFlight.Store(false)

	disabled := false
	defer func() {
		if r := recover(); r != nil {
			err = oops.Code(CodePanic).Errorf("form: submit panicked: %v", r)
			errutil.LogError(c.logger, "password change aborted", err)
			outcome = submit.Outcome{Kind: submit.KindRejected, Message: submit.MsgRejected}
			c.showResultSafely(Result{Text: submit.MsgRejected, Tone: ToneError})
		}
		if disabled {
			c.view.SetSubmitEnabled(true)
		}
	}()

	c.view.ClearResult()
	c.view.ClearErrors()

	draft := validation.Draft{
		Current: c.view.Current(),
		New:     c.view.New(),
		Confirm: c.view.Confirm(),
	}
	if violations := validation.Validate(draft); len(violations) > 0 {
		c.view.ShowErrors(violations)
		return submit.Outcome{}, oops.
			Code(CodeValidation).
			With("violations", len(violations)).
			Wrap(ErrValidation)
	}

	c.view.SetSubmitEnabled(false)
	disabled = true

	outcome = c.submitter.Submit(ctx, submit.Payload{
		CurrentPassword: draft.Current,
		NewPassword:     draft.New,
	})

	switch outcome.Kind {
	case submit.KindSuccess:
		c.view.ShowResult(Result{Text: outcome.Message, Tone: ToneNeutral})
		c.view.Reset()
		c.UpdateStrength()
	case submit.KindNetwork:
		msg := "password change request failed"
		if !submit.IsTransport(outcome.Err) {
			msg = "password change request not sent"
		}
		errutil.LogError(c.logger, msg, outcome.Err)
		c.view.ShowResult(Result{Text: outcome.Message, Tone: ToneError})
	default:
		c.logger.Info("password change rejected", "status", outcome.Status)
		c.view.ShowResult(Result{Text: outcome.Message, Tone: ToneError})
	}
	return outcome, nil
}

// showResultSafely writes to the result region while already recovering from
// a panic; a second panic from the view is swallowed so the control still
// gets re-enabled.
func (c *Controller) showResultSafely(result Result) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("result region panicked", "panic", r)
		}
	}()
	c.view.ShowResult(result)
}
