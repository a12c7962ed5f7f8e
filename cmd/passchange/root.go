package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-passchange/internal/config"
	"github.com/goliatone/go-passchange/internal/logging"
	"github.com/goliatone/go-passchange/pkg/strength"
)

const serviceName = "passchange"

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the passchange CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(Deps{})
}

func newRootCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passchange",
		Short: "Change an account password from the terminal",
		Long: `passchange collects the current and new password, shows a live strength
estimate, validates the draft and submits it to a password change endpoint.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (default $XDG_CONFIG_HOME/passchange/config.yaml)")
	flags.String("log-format", "text", "log format (text|json)")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.String("endpoint", "", "absolute URL of the password change endpoint")
	flags.String("base-url", "", "base URL joined with --path or the OpenAPI operation path")
	flags.String("path", "", "endpoint path relative to --base-url")
	flags.String("openapi", "", "OpenAPI document (path or URL) declaring the password change operation")
	flags.String("operation-id", "", "operationId of the POST operation in --openapi")
	flags.String("bearer-token", "", "bearer token sent in the Authorization header")
	flags.String("cookie", "", "session cookie sent with the request, as name=value")
	flags.String("theme", "", "strength palette variant")

	cmd.AddCommand(NewChangeCmd(deps))
	cmd.AddCommand(NewStrengthCmd(deps))
	cmd.AddCommand(NewConfigCmd())

	return cmd
}

// env is the state shared by subcommands once flags are parsed.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	palette strength.Palette
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	path := configFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(serviceName, version, cfg.Log.Format, level, cmd.ErrOrStderr())
	logger.Debug("configuration loaded", "path", path, "endpoint_configured", cfg.HasEndpoint())

	return &env{
		cfg:     cfg,
		logger:  logger,
		palette: strength.PaletteFromManifest(strength.DefaultManifest(), cfg.Theme.Variant),
	}, nil
}
