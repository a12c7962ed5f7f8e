package main

import (
	"net/http"

	"github.com/goliatone/go-passchange/pkg/renderers/tui"
)

// Deps contains injectable dependencies for the subcommands.
// All fields with nil values will use their default implementations.
type Deps struct {
	// PromptDriver reads passwords and confirmations.
	// Default: tui.NewSurveyDriver
	PromptDriver tui.PromptDriver

	// HTTPClient performs the submission round trip.
	// Default: http.DefaultClient
	HTTPClient *http.Client
}
