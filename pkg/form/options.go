package form

import (
	"log/slog"

	"github.com/goliatone/go-passchange/pkg/strength"
)

// Option configures the Controller.
type Option func(*Controller)

// WithPalette sets the colours used for the strength indicator.
func WithPalette(p strength.Palette) Option {
	return func(c *Controller) {
		c.palette = p
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
