package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/oops"

	"github.com/goliatone/go-passchange/internal/errutil"
)

// DefaultPath is the endpoint path used by the stock page.
const DefaultPath = "/api/change-password"

// User facing outcome messages.
const (
	MsgSuccess       = "Password changed successfully."
	MsgRejected      = "Failed to change password. Check current password and try again."
	MsgUnparseable   = "Unable to parse server response."
	MsgNetworkFailed = "Network error. Please try again."
)

// Error codes attached to oops errors produced by this package.
const (
	CodeTransport = "transport_failed"
	CodeEncode    = "payload_encode_failed"
	CodeEndpoint  = "endpoint_invalid"
)

// maxErrorBody caps how much of a rejection body is read looking for a message.
const maxErrorBody = 64 << 10

// Payload is the request body sent to the endpoint.
type Payload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Kind classifies a submission outcome.
type Kind string

const (
	KindSuccess  Kind = "success"
	KindRejected Kind = "rejected"
	KindNetwork  Kind = "network"
)

// Outcome is the result of one submission. Err is only set for KindNetwork and
// is meant for diagnostics, never for display.
type Outcome struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

// OK reports whether the server accepted the change.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// RequestDecorator mutates the outgoing request, typically to attach
// credentials owned by the calling context.
type RequestDecorator func(*http.Request) error

// Client posts password change payloads to a single endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	decorators []RequestDecorator
	logger     *slog.Logger
}

// New returns a Client for endpoint, which must be an absolute http(s) URL.
func New(endpoint string, options ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, oops.Code(CodeEndpoint).With("endpoint", endpoint).Wrapf(err, "submit: parse endpoint")
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, oops.Code(CodeEndpoint).With("endpoint", endpoint).Errorf("submit: endpoint must be an absolute http(s) URL")
	}

	c := &Client{
		endpoint:   parsed.String(),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Endpoint reports the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit sends payload once and classifies the response. It never returns an
// error: every failure is folded into the Outcome.
func (c *Client) Submit(ctx context.Context, payload Payload) Outcome {
	req, err := c.newRequest(ctx, payload)
	if err != nil {
		return c.networkFailure(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.networkFailure(oops.
			Code(CodeTransport).
			With("endpoint", c.endpoint).
			Wrapf(err, "submit: post"))
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Debug("password change accepted", "status", resp.StatusCode)
		return Outcome{Kind: KindSuccess, Status: resp.StatusCode, Message: MsgSuccess}
	}

	message := rejectionMessage(resp.Body)
	c.logger.Info("password change rejected", "status", resp.StatusCode)
	return Outcome{Kind: KindRejected, Status: resp.StatusCode, Message: message}
}

func (c *Client) newRequest(ctx context.Context, payload Payload) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, oops.Code(CodeEncode).Wrapf(err, "submit: encode payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, oops.Code(CodeTransport).With("endpoint", c.endpoint).Wrapf(err, "submit: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for _, decorate := range c.decorators {
		if err := decorate(req); err != nil {
			return nil, oops.Code(CodeTransport).With("endpoint", c.endpoint).Wrapf(err, "submit: decorate request")
		}
	}
	return req, nil
}

func (c *Client) networkFailure(err error) Outcome {
	return Outcome{Kind: KindNetwork, Message: MsgNetworkFailed, Err: err}
}

// rejectionMessage returns the server supplied message of a rejection body
// unchanged. Bodies that are not JSON get MsgUnparseable; JSON without a usable
// message (including non-object documents) gets MsgRejected.
func rejectionMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return MsgUnparseable
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return MsgUnparseable
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return MsgRejected
	}
	if msg, ok := obj["message"].(string); ok && strings.TrimSpace(msg) != "" {
		return msg
	}
	return MsgRejected
}

// IsTransport reports whether err was produced by a failed round trip.
func IsTransport(err error) bool {
	return errutil.HasCode(err, CodeTransport)
}
