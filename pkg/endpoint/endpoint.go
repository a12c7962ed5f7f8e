// Package endpoint resolves the absolute URL the password change payload is
// posted to, either from explicit configuration or from an OpenAPI document
// describing the change-password operation.
package endpoint

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/samber/oops"

	"github.com/goliatone/go-passchange/pkg/submit"
)

// DefaultOperationID is looked up when an OpenAPI document is configured
// without an explicit operation.
const DefaultOperationID = "changePassword"

// CodeUnresolved tags every resolution failure.
const CodeUnresolved = "endpoint_unresolved"

// Spec describes where the endpoint comes from. URL wins over everything else;
// otherwise OpenAPIFile (a path or URL) or OpenAPIData is consulted when set, and BaseURL
// plus Path is the final fallback.
type Spec struct {
	URL         string
	BaseURL     string
	Path        string
	OpenAPIFile string
	OpenAPIData []byte
	OperationID string

	// HTTPClient fetches OpenAPIFile when it is an http(s) URL.
	HTTPClient *http.Client
}

// Resolve returns the absolute endpoint URL described by spec.
func Resolve(ctx context.Context, spec Spec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if raw := strings.TrimSpace(spec.URL); raw != "" {
		return absolute(raw)
	}

	if spec.OpenAPIFile != "" || len(spec.OpenAPIData) > 0 {
		return fromOpenAPI(ctx, spec)
	}

	base := strings.TrimSpace(spec.BaseURL)
	if base == "" {
		return "", oops.Code(CodeUnresolved).Errorf("endpoint: no url, base url or openapi document configured")
	}
	path := strings.TrimSpace(spec.Path)
	if path == "" {
		path = submit.DefaultPath
	}
	return join(base, path)
}

func fromOpenAPI(ctx context.Context, spec Spec) (string, error) {
	raw := spec.OpenAPIData
	if len(raw) == 0 {
		data, err := loadSource(ctx, SourceFor(spec.OpenAPIFile), spec.HTTPClient)
		if err != nil {
			return "", err
		}
		raw = data
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return "", oops.Code(CodeUnresolved).Wrapf(err, "endpoint: load openapi document")
	}

	opID := strings.TrimSpace(spec.OperationID)
	if opID == "" {
		opID = DefaultOperationID
	}

	path, ok := findPostOperation(doc, opID)
	if !ok {
		return "", oops.Code(CodeUnresolved).With("operation_id", opID).Errorf("endpoint: POST operation %q not found", opID)
	}

	base := strings.TrimSpace(spec.BaseURL)
	if base == "" && len(doc.Servers) > 0 && doc.Servers[0] != nil {
		base = doc.Servers[0].URL
	}
	if base == "" {
		return "", oops.Code(CodeUnresolved).With("operation_id", opID).Errorf("endpoint: no base url and the document declares no servers")
	}
	return join(base, path)
}

func findPostOperation(doc *openapi3.T, operationID string) (string, bool) {
	if doc == nil || doc.Paths == nil {
		return "", false
	}
	for path, item := range doc.Paths.Map() {
		if item == nil || item.Post == nil {
			continue
		}
		if item.Post.OperationID == operationID {
			return path, true
		}
	}
	return "", false
}

func join(base, path string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", oops.Code(CodeUnresolved).With("base_url", base).Wrapf(err, "endpoint: parse base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return "", oops.Code(CodeUnresolved).With("base_url", base).Errorf("endpoint: base url must be absolute")
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	return u.String(), nil
}

func absolute(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", oops.Code(CodeUnresolved).With("url", raw).Wrapf(err, "endpoint: parse url")
	}
	if u.Scheme == "" || u.Host == "" {
		return "", oops.Code(CodeUnresolved).With("url", raw).Errorf("endpoint: url must be absolute")
	}
	return u.String(), nil
}
