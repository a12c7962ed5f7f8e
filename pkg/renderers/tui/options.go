package tui

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-passchange/pkg/strength"
)

// Theme captures optional formatting hints applied when printing messages.
// Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	InfoPrefix   string
	ErrorPrefix  string
	BulletPrefix string
	BarWidth     int
	BarFill      string
	BarEmpty     string
}

// DefaultTheme is plain ASCII so output stays readable when piped.
func DefaultTheme() Theme {
	return Theme{
		InfoPrefix:   "",
		ErrorPrefix:  "! ",
		BulletPrefix: "• ",
		BarWidth:     20,
		BarFill:      "#",
		BarEmpty:     ".",
	}
}

// Option configures the terminal session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput redirects everything the view prints. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithTheme applies message prefixes and bar glyphs.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithPalette forwards indicator colours to the controller.
func WithPalette(p strength.Palette) Option {
	return func(s *Session) {
		s.palette = &p
	}
}

// WithLogger sets the logger handed to the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxAttempts bounds how many submissions a session makes before giving
// up. Zero means the user decides when to stop.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}
