// Package config loads CLI configuration from an optional YAML file layered
// under command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

const appName = "passchange"

// CodeInvalid tags load and validation failures.
const CodeInvalid = "config_invalid"

// Config is the effective CLI configuration.
type Config struct {
	Endpoint EndpointConfig `koanf:"endpoint" yaml:"endpoint"`
	Auth     AuthConfig     `koanf:"auth" yaml:"auth"`
	Log      LogConfig      `koanf:"log" yaml:"log"`
	Theme    ThemeConfig    `koanf:"theme" yaml:"theme"`
}

// EndpointConfig locates the password change endpoint.
type EndpointConfig struct {
	URL         string `koanf:"url" yaml:"url,omitempty" validate:"omitempty,url"`
	BaseURL     string `koanf:"base_url" yaml:"base_url,omitempty" validate:"omitempty,url"`
	Path        string `koanf:"path" yaml:"path,omitempty" validate:"omitempty,startswith=/"`
	OpenAPI     string `koanf:"openapi" yaml:"openapi,omitempty"`
	OperationID string `koanf:"operation_id" yaml:"operation_id,omitempty"`
}

// AuthConfig carries credential material attached to the request.
type AuthConfig struct {
	BearerToken string `koanf:"bearer_token" yaml:"bearer_token,omitempty"`
	Cookie      string `koanf:"cookie" yaml:"cookie,omitempty" validate:"omitempty,contains=="`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Format string `koanf:"format" yaml:"format" validate:"oneof=text json"`
	Level  string `koanf:"level" yaml:"level" validate:"oneof=debug info warn error"`
}

// ThemeConfig selects the strength palette variant.
type ThemeConfig struct {
	Variant string `koanf:"variant" yaml:"variant,omitempty"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Log: LogConfig{Format: "text", Level: "info"},
	}
}

// flagKeys maps CLI flag names onto configuration keys. Flags not listed here
// are command options, not configuration.
var flagKeys = map[string]string{
	"endpoint":     "endpoint.url",
	"base-url":     "endpoint.base_url",
	"path":         "endpoint.path",
	"openapi":      "endpoint.openapi",
	"operation-id": "endpoint.operation_id",
	"bearer-token": "auth.bearer_token",
	"cookie":       "auth.cookie",
	"log-format":   "log.format",
	"log-level":    "log.level",
	"theme":        "theme.variant",
}

// Load reads path (when non-empty) and then applies flags. Only flags that map
// to configuration keys are consulted.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path = strings.TrimSpace(path); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code(CodeInvalid).With("path", path).Wrapf(err, "config: load file")
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return Config{}, oops.Code(CodeInvalid).Wrapf(err, "config: load flags")
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code(CodeInvalid).Wrapf(err, "config: decode")
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

var validate = validator.New()

// Validate checks field formats. It does not require an endpoint, since some
// commands never submit.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return oops.Code(CodeInvalid).Wrapf(err, "config: validate")
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, formatFieldError(fe))
	}
	return oops.Code(CodeInvalid).
		With("fields", len(messages)).
		Errorf("config: %s", strings.Join(messages, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "url":
		return fmt.Sprintf("%s must be an absolute URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, fe.Param())
	case "contains":
		return fmt.Sprintf("%s must be in name=value form", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// HasEndpoint reports whether any endpoint source is configured.
func (c Config) HasEndpoint() bool {
	e := c.Endpoint
	return e.URL != "" || e.BaseURL != "" || e.OpenAPI != ""
}

// Dir returns the configuration directory, honouring XDG_CONFIG_HOME.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// DefaultPath returns the default config file path when it exists, or "".
func DefaultPath() string {
	path := filepath.Join(Dir(), "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
