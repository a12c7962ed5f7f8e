package endpoint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
)

// maxDocumentSize caps remote OpenAPI documents.
const maxDocumentSize = 4 << 20

// SourceKind identifies where an OpenAPI document is read from.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindURL  SourceKind = "url"
)

// Source locates an OpenAPI document.
type Source struct {
	Kind     SourceKind
	Location string
}

// SourceFor classifies location: http(s) URLs are fetched, anything else is a
// file path.
func SourceFor(location string) Source {
	location = strings.TrimSpace(location)
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return Source{Kind: SourceKindURL, Location: location}
	}
	return Source{Kind: SourceKindFile, Location: filepath.Clean(location)}
}

func loadSource(ctx context.Context, src Source, client *http.Client) ([]byte, error) {
	switch src.Kind {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location)
		if err != nil {
			return nil, oops.Code(CodeUnresolved).With("file", src.Location).Wrapf(err, "endpoint: read openapi document")
		}
		return data, nil
	case SourceKindURL:
		return fetch(ctx, src.Location, client)
	default:
		return nil, oops.Code(CodeUnresolved).With("kind", src.Kind).Errorf("endpoint: unsupported source kind")
	}
}

func fetch(ctx context.Context, location string, client *http.Client) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	errb := oops.Code(CodeUnresolved).With("url", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, errb.Wrapf(err, "endpoint: build openapi request")
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errb.Wrapf(err, "endpoint: fetch openapi document")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errb.With("status", resp.StatusCode).Wrapf(fmt.Errorf("unexpected status %s", resp.Status), "endpoint: fetch openapi document")
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, errb.Wrapf(err, "endpoint: read openapi response")
	}
	if len(data) > maxDocumentSize {
		return nil, errb.With("limit", maxDocumentSize).Errorf("endpoint: openapi document too large")
	}
	return data, nil
}
