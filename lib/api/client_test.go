// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nimbus-cloud/nimbus/lib/errdefs"
)

// newTestClient starts a test server with the given handler and returns
// a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Token: "test-token"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Error("expected error for missing BaseURL")
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"00000000-0000-0000-0000-000000000001","email":"a@b.c","name":"","created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.CurrentUser(context.Background()); err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if gotPath != "/api/v1/users" {
		t.Errorf("path = %q, want %q (double slash not collapsed?)", gotPath, "/api/v1/users")
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotAgent, gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"id":"00000000-0000-0000-0000-000000000001","name":"acme","created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}`))
	})

	_, err := client.CreateOrg(context.Background(), CreateOrgRequest{Name: "acme"})
	if err != nil {
		t.Fatalf("CreateOrg: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-token")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if !strings.HasPrefix(gotAgent, "nimbus-cli/") {
		t.Errorf("User-Agent = %q, want nimbus-cli/ prefix", gotAgent)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{"session":"s"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	email := "dev@example.com"
	password := "hunter2"
	_, err = client.CreateSession(context.Background(), CreateSessionRequest{Email: &email, Password: &password})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sawHeader {
		t.Errorf("unauthenticated request carried Authorization header %q", gotAuth)
	}
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 maps to ErrUnauthorized",
			status: http.StatusUnauthorized,
			body:   `{"message":"token expired"}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, errdefs.ErrUnauthorized) {
					t.Errorf("got %v", err)
				}
			},
		},
		{
			name:   "404 carries the server message",
			status: http.StatusNotFound,
			body:   `{"message":"secret not found"}`,
			check: func(t *testing.T, err error) {
				var notFound *errdefs.NotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("got %T: %v", err, err)
				}
				if notFound.Message != "secret not found" {
					t.Errorf("message = %q", notFound.Message)
				}
			},
		},
		{
			name:   "404 with unparsable body gets the generic message",
			status: http.StatusNotFound,
			body:   `<html>gateway</html>`,
			check: func(t *testing.T, err error) {
				var notFound *errdefs.NotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("got %T: %v", err, err)
				}
				if notFound.Message != "resource not found" {
					t.Errorf("message = %q", notFound.Message)
				}
			},
		},
		{
			name:   "429 maps to ErrRateLimited",
			status: http.StatusTooManyRequests,
			body:   ``,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, errdefs.ErrRateLimited) {
					t.Errorf("got %v", err)
				}
			},
		},
		{
			name:   "500 with message becomes APIError with that message",
			status: http.StatusInternalServerError,
			body:   `{"message":"database unavailable"}`,
			check: func(t *testing.T, err error) {
				var apiError *errdefs.APIError
				if !errors.As(err, &apiError) {
					t.Fatalf("got %T: %v", err, err)
				}
				if apiError.StatusCode != 500 {
					t.Errorf("status = %d", apiError.StatusCode)
				}
				if apiError.Message != "database unavailable" {
					t.Errorf("message = %q", apiError.Message)
				}
			},
		},
		{
			name:   "500 with unparsable body gets the synthesized message",
			status: http.StatusInternalServerError,
			body:   `oops`,
			check: func(t *testing.T, err error) {
				var apiError *errdefs.APIError
				if !errors.As(err, &apiError) {
					t.Fatalf("got %T: %v", err, err)
				}
				if apiError.Message != "Request failed with status 500" {
					t.Errorf("message = %q", apiError.Message)
				}
			},
		},
		{
			name:   "403 is an APIError, not unauthorized",
			status: http.StatusForbidden,
			body:   `{"message":"not a member of this organization"}`,
			check: func(t *testing.T, err error) {
				if errors.Is(err, errdefs.ErrUnauthorized) {
					t.Error("403 must not map to ErrUnauthorized")
				}
				var apiError *errdefs.APIError
				if !errors.As(err, &apiError) {
					t.Fatalf("got %T: %v", err, err)
				}
				if apiError.StatusCode != 403 {
					t.Errorf("status = %d", apiError.StatusCode)
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			})

			_, err := client.ListOrgs(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			test.check(t, err)
		})
	}
}

func TestTransportErrorsAreNotReclassified(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://127.0.0.1:1", Token: "t"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.ListOrgs(context.Background())
	if err == nil {
		t.Fatal("expected connection error")
	}
	var apiError *errdefs.APIError
	if errors.As(err, &apiError) {
		t.Errorf("transport failure was reclassified as APIError: %v", err)
	}
	if errdefs.IsNotFound(err) {
		t.Errorf("transport failure was reclassified as NotFound: %v", err)
	}
}

func TestDeleteToleratesEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteSession(context.Background(), "s-1"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
}

func TestContextCancellationPropagates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListOrgs(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}
