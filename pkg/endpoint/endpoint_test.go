package endpoint_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-passchange/internal/errutil"
	"github.com/goliatone/go-passchange/pkg/endpoint"
)

const document = `{
  "openapi": "3.0.3",
  "info": {"title": "accounts", "version": "1.0.0"},
  "servers": [{"url": "https://accounts.example.test/v1"}],
  "paths": {
    "/me/password": {
      "post": {
        "operationId": "changePassword",
        "responses": {"204": {"description": "changed"}}
      }
    },
    "/me": {
      "get": {
        "operationId": "getMe",
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func TestResolve(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		spec endpoint.Spec
		want string
	}{
		{
			name: "explicit url wins",
			spec: endpoint.Spec{URL: "https://a.test/custom", BaseURL: "https://ignored.test"},
			want: "https://a.test/custom",
		},
		{
			name: "base url with default path",
			spec: endpoint.Spec{BaseURL: "https://a.test/"},
			want: "https://a.test/api/change-password",
		},
		{
			name: "base url with custom path",
			spec: endpoint.Spec{BaseURL: "https://a.test/app", Path: "account/password"},
			want: "https://a.test/app/account/password",
		},
		{
			name: "openapi servers",
			spec: endpoint.Spec{OpenAPIData: []byte(document)},
			want: "https://accounts.example.test/v1/me/password",
		},
		{
			name: "openapi with base override",
			spec: endpoint.Spec{OpenAPIData: []byte(document), BaseURL: "http://localhost:8080"},
			want: "http://localhost:8080/me/password",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := endpoint.Resolve(ctx, tc.spec)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestResolve_OpenAPIFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, []byte(document), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := endpoint.Resolve(context.Background(), endpoint.Spec{OpenAPIFile: path, OperationID: "changePassword"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "https://accounts.example.test/v1/me/password" {
		t.Fatalf("unexpected endpoint %s", got)
	}
}

func TestResolve_OpenAPIURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openapi.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(document))
	}))
	defer srv.Close()

	got, err := endpoint.Resolve(context.Background(), endpoint.Spec{
		OpenAPIFile: srv.URL + "/openapi.json",
		BaseURL:     "https://staging.example.test",
		HTTPClient:  srv.Client(),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "https://staging.example.test/me/password" {
		t.Fatalf("unexpected endpoint %s", got)
	}

	_, err = endpoint.Resolve(context.Background(), endpoint.Spec{OpenAPIFile: srv.URL + "/missing.json"})
	if err == nil {
		t.Fatalf("expected error for missing remote document")
	}
	errutil.AssertErrorCode(t, err, endpoint.CodeUnresolved)
}

func TestResolve_OpenAPIURLTooLarge(t *testing.T) {
	padding := strings.Repeat(" ", 4<<20)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(document + padding))
	}))
	defer srv.Close()

	_, err := endpoint.Resolve(context.Background(), endpoint.Spec{OpenAPIFile: srv.URL, HTTPClient: srv.Client()})
	if err == nil {
		t.Fatalf("expected error for oversized document")
	}
	errutil.AssertErrorCode(t, err, endpoint.CodeUnresolved)
	if !strings.Contains(err.Error(), "too large") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSourceFor(t *testing.T) {
	cases := map[string]endpoint.Source{
		"https://a.test/openapi.yaml": {Kind: endpoint.SourceKindURL, Location: "https://a.test/openapi.yaml"},
		"HTTP://a.test/openapi.yaml":  {Kind: endpoint.SourceKindURL, Location: "HTTP://a.test/openapi.yaml"},
		"./specs/../openapi.json":     {Kind: endpoint.SourceKindFile, Location: "openapi.json"},
	}
	for in, want := range cases {
		if got := endpoint.SourceFor(in); got != want {
			t.Fatalf("SourceFor(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestResolve_Errors(t *testing.T) {
	cases := map[string]endpoint.Spec{
		"nothing configured":    {},
		"relative url":          {URL: "/api/change-password"},
		"relative base":         {BaseURL: "localhost"},
		"unknown operation":     {OpenAPIData: []byte(document), OperationID: "deleteAccount"},
		"get is not a post":     {OpenAPIData: []byte(document), OperationID: "getMe"},
		"missing document file": {OpenAPIFile: filepath.Join(os.TempDir(), "does-not-exist.json")},
		"broken document":       {OpenAPIData: []byte("{not json")},
	}
	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := endpoint.Resolve(context.Background(), spec)
			if err == nil {
				t.Fatalf("expected error")
			}
			errutil.AssertErrorCode(t, err, endpoint.CodeUnresolved)
		})
	}
}

func TestResolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := endpoint.Resolve(ctx, endpoint.Spec{URL: "https://a.test"}); err == nil {
		t.Fatalf("expected context error")
	}
}
