package config

import (
	"gopkg.in/yaml.v3"
)

const redacted = "[redacted]"

// Dump renders the configuration as YAML with credentials masked.
func Dump(cfg Config) ([]byte, error) {
	if cfg.Auth.BearerToken != "" {
		cfg.Auth.BearerToken = redacted
	}
	if cfg.Auth.Cookie != "" {
		cfg.Auth.Cookie = redacted
	}
	return yaml.Marshal(cfg)
}
