package submit

import (
	"log/slog"
	"net/http"
	"strings"
)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for the round trip. Cookie jars
// and transports configured on it are honoured.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRequestDecorator registers a hook that runs on every request after the
// default headers are set.
func WithRequestDecorator(fn RequestDecorator) Option {
	return func(c *Client) {
		if fn != nil {
			c.decorators = append(c.decorators, fn)
		}
	}
}

// WithHeader sets a static header on every request.
func WithHeader(name, value string) Option {
	name = strings.TrimSpace(name)
	return WithRequestDecorator(func(r *http.Request) error {
		if name != "" {
			r.Header.Set(name, value)
		}
		return nil
	})
}

// WithBearerToken attaches an Authorization: Bearer header. Empty tokens are
// ignored so callers can pass optional configuration straight through.
func WithBearerToken(token string) Option {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return WithHeader("Authorization", "Bearer "+token)
}

// WithCookie attaches a session cookie given as "name=value".
func WithCookie(raw string) Option {
	name, value, ok := strings.Cut(strings.TrimSpace(raw), "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return nil
	}
	return WithRequestDecorator(func(r *http.Request) error {
		r.AddCookie(&http.Cookie{Name: name, Value: strings.TrimSpace(value)})
		return nil
	})
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
