// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nimbus-cloud/nimbus/lib/errdefs"
)

// configDirName is the dotfile directory under the user's home that
// holds all Nimbus CLI state.
const configDirName = ".nimbus"

// configFileName is the state file inside the config directory.
const configFileName = "config.json"

// Credential is the logged-in user's API token plus display identity.
// At most one credential is persisted at a time — the CLI models a
// single logged-in identity per machine.
type Credential struct {
	// Token is the opaque API key proving the user's identity.
	Token string `json:"token"`

	// ID is the user's ID on the platform.
	ID uuid.UUID `json:"id"`

	// Email is shown by "nimbus whoami"; it is display data only.
	Email string `json:"email"`
}

// LinkedContext is a saved organization/application default for one
// project directory. The name fields are denormalized display caches —
// they may go stale and are never used for identity, only for output.
type LinkedContext struct {
	OrgID   uuid.UUID  `json:"org_id"`
	OrgName string     `json:"org_name"`
	AppID   *uuid.UUID `json:"app_id"`
	AppName *string    `json:"app_name"`
}

// State is the full persisted record: the credential (nil when logged
// out) and the linked-directory map, keyed by canonical absolute path.
type State struct {
	User   *Credential              `json:"user"`
	Linked map[string]LinkedContext `json:"linked"`
}

// New returns the empty default state: no credential, no links.
func New() *State {
	return &State{Linked: make(map[string]LinkedContext)}
}

// DefaultPath returns the path to the state file. Checks the
// NIMBUS_CONFIG environment variable first, then falls back to
// ~/.nimbus/config.json.
func DefaultPath() (string, error) {
	if envPath := os.Getenv("NIMBUS_CONFIG"); envPath != "" {
		return envPath, nil
	}
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(homeDirectory, configDirName, configFileName), nil
}

// WorkingDirectoryKey returns the canonical key for the current working
// directory, used to index the linked map. The key is the cleaned
// absolute path as the operating system reports it — symlinks are not
// resolved, so the key matches what the user sees in their shell.
// Callers compute this once per process and pass it around rather than
// re-deriving it mid-operation.
func WorkingDirectoryKey() (string, error) {
	workingDirectory, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}
	return filepath.Clean(workingDirectory), nil
}

// Load reads the state file at path. A missing file is not an error:
// it returns the empty default, since a fresh machine has no state yet.
// A file that exists but fails to parse returns *errdefs.CorruptStateError
// — the CLI refuses to guess at a damaged file's contents.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading state file %s: %w", path, err)
	}

	loaded := New()
	if err := json.Unmarshal(data, loaded); err != nil {
		return nil, &errdefs.CorruptStateError{Path: path, Err: err}
	}
	if loaded.Linked == nil {
		loaded.Linked = make(map[string]LinkedContext)
	}
	return loaded, nil
}

// Save writes the full state record to path atomically: serialize to a
// temporary file in the same directory, then rename over the target.
// The temporary file must live next to the target — rename is only
// atomic within one filesystem. The parent directory is created with
// mode 0700 if needed, and the file is written with mode 0600 since it
// contains the API token.
func (s *State) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating state directory %s: %w", directory, err)
	}

	temporaryPath := path + ".tmp"
	if err := os.WriteFile(temporaryPath, data, 0600); err != nil {
		return fmt.Errorf("writing state file %s: %w", temporaryPath, err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		// Best effort: don't leave the temporary file behind.
		os.Remove(temporaryPath)
		return fmt.Errorf("replacing state file %s: %w", path, err)
	}
	return nil
}

// SetCredential replaces the persisted credential in memory. Call Save
// to persist.
func (s *State) SetCredential(token string, id uuid.UUID, email string) {
	s.User = &Credential{Token: token, ID: id, Email: email}
}

// ClearCredential removes the credential in memory. Call Save to persist.
func (s *State) ClearCredential() {
	s.User = nil
}

// SetLinked records a linked context for the given directory key,
// overwriting any existing link for that directory. Call Save to persist.
func (s *State) SetLinked(key string, context LinkedContext) {
	s.Linked[key] = context
}

// ClearLinked removes the link for the given directory key. Removing a
// key that is not present is a no-op. Call Save to persist.
func (s *State) ClearLinked(key string) {
	delete(s.Linked, key)
}

// LinkedFor returns the linked context for the given directory key.
// Lookup is an exact match on the canonical path — there is no
// parent-directory inheritance; linking is strictly per-directory.
func (s *State) LinkedFor(key string) (LinkedContext, bool) {
	linked, ok := s.Linked[key]
	return linked, ok
}
