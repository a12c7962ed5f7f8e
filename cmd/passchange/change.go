package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-passchange/internal/errutil"
	"github.com/goliatone/go-passchange/pkg/endpoint"
	"github.com/goliatone/go-passchange/pkg/renderers/tui"
	"github.com/goliatone/go-passchange/pkg/submit"
)

// NewChangeCmd creates the interactive change subcommand.
func NewChangeCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "change",
		Short: "Change the password interactively",
		Long: `Prompt for the current password, the new password and its confirmation,
then submit them. Validation messages and server responses are shown inline
and the form can be retried until the change succeeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChange(cmd, deps)
		},
	}
}

func runChange(cmd *cobra.Command, deps Deps) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	target, err := endpoint.Resolve(ctx, endpoint.Spec{
		URL:         e.cfg.Endpoint.URL,
		BaseURL:     e.cfg.Endpoint.BaseURL,
		Path:        e.cfg.Endpoint.Path,
		OpenAPIFile: e.cfg.Endpoint.OpenAPI,
		OperationID: e.cfg.Endpoint.OperationID,
		HTTPClient:  deps.HTTPClient,
	})
	if err != nil {
		errutil.LogError(e.logger, "resolve endpoint failed", err)
		return err
	}

	client, err := submit.New(target,
		submit.WithHTTPClient(deps.HTTPClient),
		submit.WithBearerToken(e.cfg.Auth.BearerToken),
		submit.WithCookie(e.cfg.Auth.Cookie),
		submit.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}
	e.logger.Debug("submitting to endpoint", "endpoint", client.Endpoint())

	out := cmd.OutOrStdout()
	driver := deps.PromptDriver
	if driver == nil {
		driver = tui.NewSurveyDriver(out)
	}

	session, err := tui.NewSession(client,
		tui.WithPromptDriver(driver),
		tui.WithOutput(out),
		tui.WithPalette(e.palette),
		tui.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}

	if _, err := session.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			e.logger.Info("password change aborted")
		}
		return err
	}
	return nil
}
