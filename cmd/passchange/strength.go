package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	htmlrender "github.com/goliatone/go-passchange/pkg/renderers/html"
	"github.com/goliatone/go-passchange/pkg/renderers/tui"
	"github.com/goliatone/go-passchange/pkg/strength"
)

// Output formats accepted by the strength subcommand.
const (
	formatText = "text"
	formatJSON = "json"
	formatHTML = "html"
)

const codeUsage = "usage_invalid"

// strengthReport is the JSON shape printed by `strength --format json`.
type strengthReport struct {
	Score int                  `json:"score"`
	Label strength.Label       `json:"label"`
	Tier  strength.Tier        `json:"tier"`
	Color string               `json:"color"`
	Met   []strength.Criterion `json:"met"`
	Empty bool                 `json:"empty"`
}

// NewStrengthCmd creates the strength subcommand.
func NewStrengthCmd(deps Deps) *cobra.Command {
	var (
		format string
		stdin  bool
	)

	cmd := &cobra.Command{
		Use:   "strength",
		Short: "Estimate the strength of a password",
		Long: `Read a password and print its strength estimate. The password is prompted for
unless --stdin is given, in which case the first line of standard input is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStrength(cmd, deps, format, stdin)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format (text|json|html)")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "read the password from standard input")

	return cmd
}

func runStrength(cmd *cobra.Command, deps Deps, format string, stdin bool) error {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case formatText, formatJSON, formatHTML:
	default:
		return oops.Code(codeUsage).With("format", format).Errorf("strength: unknown format %q", format)
	}

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	password, err := readPassword(cmd, deps, stdin)
	if err != nil {
		return err
	}

	estimate := strength.Evaluate(password)
	indicator := strength.NewIndicator(estimate, e.palette)
	e.logger.Debug("strength estimated", "score", estimate.Score, "label", string(estimate.Label))

	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		met := estimate.Met
		if met == nil {
			met = []strength.Criterion{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(strengthReport{
			Score: estimate.Score,
			Label: estimate.Label,
			Tier:  estimate.Tier,
			Color: indicator.Color,
			Met:   met,
			Empty: estimate.Empty(),
		})
	case formatHTML:
		renderer, err := htmlrender.New(htmlrender.WithPalette(e.palette))
		if err != nil {
			return err
		}
		fragment, err := renderer.StrengthBar(indicator)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, fragment)
		return err
	default:
		_, err = fmt.Fprintln(out, tui.RenderBar(indicator, tui.DefaultTheme()))
		return err
	}
}

func readPassword(cmd *cobra.Command, deps Deps, stdin bool) (string, error) {
	if stdin {
		raw, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 64<<10))
		if err != nil {
			return "", oops.Code(codeUsage).Wrapf(err, "strength: read stdin")
		}
		line, _, _ := strings.Cut(string(raw), "\n")
		return strings.TrimSuffix(line, "\r"), nil
	}

	driver := deps.PromptDriver
	if driver == nil {
		driver = tui.NewSurveyDriver(cmd.OutOrStdout())
	}
	return driver.Password(cmd.Context(), tui.InputConfig{Message: tui.PromptNew})
}
