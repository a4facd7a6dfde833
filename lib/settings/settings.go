// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package settings loads endpoint configuration for the CLI.
//
// Settings are distinct from the persisted login/link state: they name
// which deployment of the platform the CLI talks to, and are typically
// checked into a project repository (a local settings.json) or set once
// per machine (~/.nimbus/settings.json). Precedence is local file, then
// global file, then built-in defaults. Files may contain // and /* */
// comments and trailing commas; they are stripped before parsing.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// settingsFileName is the file name probed both locally and globally.
const settingsFileName = "settings.json"

// Built-in defaults, used when no settings file is present.
const (
	defaultAPIURL     = "https://api.nimbus.cloud"
	defaultDocsURL    = "https://docs.nimbus.cloud"
	defaultWebsiteURL = "https://nimbus.cloud"
)

// EnvAPIURL overrides the API base URL regardless of settings files.
const EnvAPIURL = "NIMBUS_API_URL"

// Settings holds the endpoint URLs for one platform deployment.
type Settings struct {
	// APIURLValue is the API base URL (e.g. "https://api.nimbus.cloud").
	APIURLValue string `json:"api_url"`

	// DocsURL is the documentation site, shown by help output.
	DocsURL string `json:"docs_url"`

	// WebsiteURL is the main website.
	WebsiteURL string `json:"website_url"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		APIURLValue: defaultAPIURL,
		DocsURL:     defaultDocsURL,
		WebsiteURL:  defaultWebsiteURL,
	}
}

// Load reads settings with precedence: ./settings.json, then
// ~/.nimbus/settings.json, then defaults. A missing file at either
// location is not an error; a present but unparsable file is.
func Load() (*Settings, error) {
	if loaded, err := loadFile(settingsFileName); err != nil {
		return nil, err
	} else if loaded != nil {
		return loaded, nil
	}

	homeDirectory, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDirectory, ".nimbus", settingsFileName)
		if loaded, err := loadFile(globalPath); err != nil {
			return nil, err
		} else if loaded != nil {
			return loaded, nil
		}
	}

	return Default(), nil
}

// loadFile parses one settings file. Returns (nil, nil) when the file
// does not exist so the caller can try the next tier.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	// Defaults fill any field the file omits.
	loaded := Default()
	if err := json.Unmarshal(jsonc.ToJSON(data), loaded); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return loaded, nil
}

// APIURL returns the effective API base URL: the NIMBUS_API_URL
// environment variable when set, else the configured value.
func (s *Settings) APIURL() string {
	if override := os.Getenv(EnvAPIURL); override != "" {
		return override
	}
	return s.APIURLValue
}
