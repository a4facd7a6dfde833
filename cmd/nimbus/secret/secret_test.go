// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/nimbus-cloud/nimbus/lib/errdefs"
)

// chdir mirrors t.Chdir (Go 1.24+), which this toolchain lacks.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

// secretsEnv points the command stack at a test server and a throwaway
// state file, with token and organization supplied via environment.
func secretsEnv(t *testing.T, orgID uuid.UUID, handler http.Handler) {
	t.Helper()

	tempDir := t.TempDir()
	chdir(t, tempDir)
	t.Setenv("HOME", tempDir)
	t.Setenv("NIMBUS_CONFIG", filepath.Join(tempDir, "config.json"))
	t.Setenv("NIMBUS_TOKEN", "test-token")
	t.Setenv("NIMBUS_ORG", orgID.String())

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("NIMBUS_API_URL", server.URL)
}

func TestGetResolvesNameThroughListing(t *testing.T) {
	orgID := uuid.New()
	targetID := uuid.New()
	otherID := uuid.New()
	listPath := fmt.Sprintf("/api/v1/orgs/%s/secrets", orgID)
	getPath := listPath + "/" + targetID.String()

	var requests []string
	var revealQuery string
	secretsEnv(t, orgID, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == listPath:
			fmt.Fprintf(w, `{"secrets":[
				{"id":%q,"name":"OTHER"},
				{"id":%q,"name":"DB_PASSWORD"}
			]}`, otherID, targetID)
		case r.Method == http.MethodGet && r.URL.Path == getPath:
			revealQuery = r.URL.RawQuery
			fmt.Fprintf(w, `{"id":%q,"name":"DB_PASSWORD","value":"hunter2"}`, targetID)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))

	if err := Command().Execute([]string{"get", "DB_PASSWORD"}); err != nil {
		t.Fatalf("get: %v", err)
	}

	want := []string{"GET " + listPath, "GET " + getPath}
	if len(requests) != 2 || requests[0] != want[0] || requests[1] != want[1] {
		t.Errorf("requests = %v, want %v", requests, want)
	}
	if revealQuery != "reveal=true" {
		t.Errorf("reveal query = %q, want reveal=true", revealQuery)
	}
}

func TestGetUnknownNameIsNotFound(t *testing.T) {
	orgID := uuid.New()
	secretsEnv(t, orgID, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"secrets":[{"id":%q,"name":"PRESENT"}]}`, uuid.New())
	}))

	err := Command().Execute([]string{"get", "MISSING"})
	if !errdefs.IsNotFound(err) {
		t.Fatalf("error = %v, want not-found", err)
	}
	if !strings.Contains(err.Error(), "MISSING") {
		t.Errorf("error %q does not name the secret", err)
	}
}

func TestSetUpdatesExistingSecret(t *testing.T) {
	orgID := uuid.New()
	existingID := uuid.New()
	listPath := fmt.Sprintf("/api/v1/orgs/%s/secrets", orgID)
	updatePath := listPath + "/" + existingID.String()

	var updateBody []byte
	secretsEnv(t, orgID, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == listPath:
			fmt.Fprintf(w, `{"secrets":[{"id":%q,"name":"DB_PASSWORD"}]}`, existingID)
		case r.Method == http.MethodPut && r.URL.Path == updatePath:
			updateBody, _ = io.ReadAll(r.Body)
			fmt.Fprintf(w, `{"id":%q,"name":"DB_PASSWORD"}`, existingID)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))

	if err := Command().Execute([]string{"set", "DB_PASSWORD", "--value", "hunter3"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var sent struct {
		Name  *string `json:"name"`
		Value *string `json:"value"`
	}
	if err := json.Unmarshal(updateBody, &sent); err != nil {
		t.Fatalf("update body %q: %v", updateBody, err)
	}
	if sent.Value == nil || *sent.Value != "hunter3" {
		t.Errorf("value = %v, want hunter3", sent.Value)
	}
	if sent.Name != nil {
		t.Errorf("update renamed the secret to %q", *sent.Name)
	}
}

func TestSetCreatesMissingSecret(t *testing.T) {
	orgID := uuid.New()
	listPath := fmt.Sprintf("/api/v1/orgs/%s/secrets", orgID)

	var createBody []byte
	secretsEnv(t, orgID, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == listPath:
			fmt.Fprint(w, `{"secrets":[]}`)
		case r.Method == http.MethodPost && r.URL.Path == listPath:
			createBody, _ = io.ReadAll(r.Body)
			fmt.Fprintf(w, `{"id":%q,"name":"API_KEY"}`, uuid.New())
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))

	if err := Command().Execute([]string{"set", "API_KEY", "--value", "abc123"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var sent struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(createBody, &sent); err != nil {
		t.Fatalf("create body %q: %v", createBody, err)
	}
	if sent.Name != "API_KEY" || sent.Value != "abc123" {
		t.Errorf("created %+v, want API_KEY/abc123", sent)
	}
}

func TestDeleteResolvesNameThroughListing(t *testing.T) {
	orgID := uuid.New()
	targetID := uuid.New()
	listPath := fmt.Sprintf("/api/v1/orgs/%s/secrets", orgID)
	deletePath := listPath + "/" + targetID.String()

	var deleted bool
	secretsEnv(t, orgID, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == listPath:
			fmt.Fprintf(w, `{"secrets":[{"id":%q,"name":"STALE_KEY"}]}`, targetID)
		case r.Method == http.MethodDelete && r.URL.Path == deletePath:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))

	if err := Command().Execute([]string{"delete", "STALE_KEY"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("delete endpoint was never called")
	}
}
