// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"os"
	"path/filepath"
	"testing"
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

func TestLoadDefaultsWhenNoFiles(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.APIURLValue != defaultAPIURL {
		t.Errorf("api url = %q, want %q", loaded.APIURLValue, defaultAPIURL)
	}
	if loaded.DocsURL != defaultDocsURL {
		t.Errorf("docs url = %q, want %q", loaded.DocsURL, defaultDocsURL)
	}
}

func TestLoadLocalFileWithComments(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	contents := `{
	// Point at the staging deployment.
	"api_url": "https://api.staging.nimbus.cloud", /* inline */
}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.APIURLValue != "https://api.staging.nimbus.cloud" {
		t.Errorf("api url = %q", loaded.APIURLValue)
	}
	// Omitted fields keep their defaults.
	if loaded.DocsURL != defaultDocsURL {
		t.Errorf("docs url = %q, want default", loaded.DocsURL)
	}
}

func TestLocalFileWinsOverGlobal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".nimbus"), 0700); err != nil {
		t.Fatal(err)
	}
	global := `{"api_url": "https://api.global.example"}`
	if err := os.WriteFile(filepath.Join(home, ".nimbus", "settings.json"), []byte(global), 0644); err != nil {
		t.Fatal(err)
	}
	local := `{"api_url": "https://api.local.example"}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(local), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.APIURLValue != "https://api.local.example" {
		t.Errorf("api url = %q, want the local file's value", loaded.APIURLValue)
	}
}

func TestGlobalFileUsedWhenNoLocal(t *testing.T) {
	chdir(t, t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".nimbus"), 0700); err != nil {
		t.Fatal(err)
	}
	global := `{"api_url": "https://api.global.example"}`
	if err := os.WriteFile(filepath.Join(home, ".nimbus", "settings.json"), []byte(global), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.APIURLValue != "https://api.global.example" {
		t.Errorf("api url = %q", loaded.APIURLValue)
	}
}

func TestUnparsableFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for unparsable settings file")
	}
}

func TestAPIURLEnvironmentOverride(t *testing.T) {
	loaded := Default()

	t.Setenv(EnvAPIURL, "http://localhost:8080")
	if got := loaded.APIURL(); got != "http://localhost:8080" {
		t.Errorf("api url = %q, want the environment override", got)
	}

	t.Setenv(EnvAPIURL, "")
	if got := loaded.APIURL(); got != defaultAPIURL {
		t.Errorf("api url = %q, want default", got)
	}
}
