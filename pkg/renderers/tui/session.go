// Package tui runs the password change form in a terminal: masked prompts for
// the three fields, the strength bar printed once the new password is known,
// and a retry prompt after validation or remote failures.
package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/goliatone/go-passchange/pkg/form"
	"github.com/goliatone/go-passchange/pkg/strength"
	"github.com/goliatone/go-passchange/pkg/submit"
)

// Prompt labels.
const (
	PromptCurrent = "Current password"
	PromptNew     = "New password"
	PromptConfirm = "Confirm new password"
	PromptRetry   = "Try again?"
)

// MsgNotChanged is printed when the session ends without a successful change.
const MsgNotChanged = "Password not changed."

// Session binds a terminal view to a form controller.
type Session struct {
	driver      PromptDriver
	out         io.Writer
	theme       Theme
	palette     *strength.Palette
	logger      *slog.Logger
	maxAttempts int

	view       *View
	controller *form.Controller
}

// NewSession constructs a session that submits through submitter.
func NewSession(submitter form.Submitter, options ...Option) (*Session, error) {
	s := &Session{
		out:    os.Stdout,
		theme:  DefaultTheme(),
		logger: slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}

	s.view = NewView(s.out, s.theme)

	ctrlOpts := []form.Option{form.WithLogger(s.logger)}
	if s.palette != nil {
		ctrlOpts = append(ctrlOpts, form.WithPalette(*s.palette))
	}
	controller, err := form.New(s.view, submitter, ctrlOpts...)
	if err != nil {
		return nil, err
	}
	s.controller = controller
	return s, nil
}

// View exposes the terminal view, mainly for inspection after Run.
func (s *Session) View() *View {
	return s.view
}

// Run prompts for the fields and submits until the password is changed, the
// user declines to retry, or the attempt budget is spent.
func (s *Session) Run(ctx context.Context) (submit.Outcome, error) {
	if ctx == nil {
		return submit.Outcome{}, errors.New("tui: context is required")
	}

	attempts := 0
	for {
		if err := s.collect(ctx); err != nil {
			return submit.Outcome{}, err
		}

		outcome, err := s.controller.Submit(ctx)
		switch {
		case err == nil && outcome.OK():
			return outcome, nil
		case err != nil && !errors.Is(err, form.ErrValidation):
			return outcome, err
		}

		attempts++
		if s.maxAttempts > 0 && attempts >= s.maxAttempts {
			return outcome, s.giveUp(ctx)
		}

		again, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: PromptRetry,
			Default: true,
		})
		if err != nil {
			return outcome, err
		}
		if !again {
			return outcome, s.giveUp(ctx)
		}
	}
}

func (s *Session) giveUp(ctx context.Context) error {
	if err := s.driver.Info(ctx, MsgNotChanged); err != nil {
		s.logger.Warn("status line not printed", "error", err)
	}
	return ErrNotChanged
}

func (s *Session) collect(ctx context.Context) error {
	current, err := s.driver.Password(ctx, InputConfig{Message: PromptCurrent})
	if err != nil {
		return err
	}
	s.view.SetCurrent(current)

	next, err := s.driver.Password(ctx, InputConfig{
		Message: PromptNew,
		Help:    "At least 8 characters; mix case, digits and symbols for a stronger password.",
	})
	if err != nil {
		return err
	}
	s.view.SetNew(next)
	s.controller.UpdateStrength()

	confirm, err := s.driver.Password(ctx, InputConfig{Message: PromptConfirm})
	if err != nil {
		return err
	}
	s.view.SetConfirm(confirm)
	return nil
}
