// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/nimbus-cloud/nimbus/lib/errdefs"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User != nil {
		t.Errorf("expected nil credential, got %+v", loaded.User)
	}
	if loaded.Linked == nil {
		t.Error("expected non-nil linked map")
	}
	if len(loaded.Linked) != 0 {
		t.Errorf("expected empty linked map, got %d entries", len(loaded.Linked))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	userID := uuid.New()
	appID := uuid.New()
	appName := "checkout"

	original := New()
	original.SetCredential("tok_abc123", userID, "dev@example.com")
	original.SetLinked("/home/dev/project", LinkedContext{
		OrgID:   uuid.New(),
		OrgName: "acme",
		AppID:   &appID,
		AppName: &appName,
	})

	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User == nil {
		t.Fatal("expected credential to survive round trip")
	}
	if loaded.User.Token != "tok_abc123" {
		t.Errorf("token = %q, want %q", loaded.User.Token, "tok_abc123")
	}
	if loaded.User.ID != userID {
		t.Errorf("user ID = %s, want %s", loaded.User.ID, userID)
	}
	if loaded.User.Email != "dev@example.com" {
		t.Errorf("email = %q, want %q", loaded.User.Email, "dev@example.com")
	}

	linked, ok := loaded.LinkedFor("/home/dev/project")
	if !ok {
		t.Fatal("expected linked context for /home/dev/project")
	}
	if linked.OrgName != "acme" {
		t.Errorf("org name = %q, want %q", linked.OrgName, "acme")
	}
	if linked.AppID == nil || *linked.AppID != appID {
		t.Errorf("app ID = %v, want %s", linked.AppID, appID)
	}
	if linked.AppName == nil || *linked.AppName != appName {
		t.Errorf("app name = %v, want %q", linked.AppName, appName)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for corrupt file")
	}
	if !errdefs.IsCorruptState(err) {
		t.Errorf("expected CorruptStateError, got %T: %v", err, err)
	}
}

func TestLoadCorruptFileDoesNotDestroyIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := []byte("{damaged but precious")
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("state file gone after failed load: %v", err)
	}
	if string(after) != string(contents) {
		t.Error("failed load modified the state file")
	}
}

func TestSaveCreatesDirectoryAndRestrictsMode(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "nested", "config.json")

	persisted := New()
	persisted.SetCredential("secret-token", uuid.New(), "dev@example.com")
	if err := persisted.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("state file mode = %o, want 0600", mode)
	}

	directoryInfo, err := os.Stat(filepath.Join(base, "nested"))
	if err != nil {
		t.Fatalf("Stat dir: %v", err)
	}
	if mode := directoryInfo.Mode().Perm(); mode != 0700 {
		t.Errorf("state directory mode = %o, want 0700", mode)
	}
}

func TestSaveLeavesNoTemporaryFile(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "config.json")

	if err := New().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if entry.Name() != "config.json" {
			t.Errorf("unexpected file left behind: %s", entry.Name())
		}
	}
}

func TestFailedSavePreservesPriorFile(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "config.json")

	prior := New()
	prior.SetCredential("prior-token", uuid.New(), "dev@example.com")
	if err := prior.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	priorData, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Block the temporary-file write: saves go through path+".tmp", so a
	// directory squatting there makes the write fail before the rename.
	if err := os.Mkdir(path+".tmp", 0700); err != nil {
		t.Fatal(err)
	}

	replacement := New()
	replacement.SetCredential("new-token", uuid.New(), "other@example.com")
	if err := replacement.Save(path); err == nil {
		t.Fatal("expected Save to fail")
	}

	afterData, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("prior state file gone after failed save: %v", err)
	}
	if string(afterData) != string(priorData) {
		t.Error("failed save modified the prior state file")
	}
}

func TestLinkedDirectoriesAreIndependent(t *testing.T) {
	persisted := New()
	persisted.SetLinked("/home/dev/a", LinkedContext{OrgID: uuid.New(), OrgName: "org-a"})
	persisted.SetLinked("/home/dev/b", LinkedContext{OrgID: uuid.New(), OrgName: "org-b"})

	persisted.ClearLinked("/home/dev/a")

	if _, ok := persisted.LinkedFor("/home/dev/a"); ok {
		t.Error("cleared link still present")
	}
	linked, ok := persisted.LinkedFor("/home/dev/b")
	if !ok {
		t.Fatal("unrelated link removed")
	}
	if linked.OrgName != "org-b" {
		t.Errorf("org name = %q, want %q", linked.OrgName, "org-b")
	}
}

func TestLinkedLookupIsExactMatch(t *testing.T) {
	persisted := New()
	persisted.SetLinked("/home/dev/project", LinkedContext{OrgID: uuid.New(), OrgName: "acme"})

	// No parent-directory inheritance.
	if _, ok := persisted.LinkedFor("/home/dev/project/subdir"); ok {
		t.Error("subdirectory unexpectedly inherited the parent's link")
	}
	if _, ok := persisted.LinkedFor("/home/dev"); ok {
		t.Error("parent directory unexpectedly matched the child's link")
	}
}

func TestClearCredentialPreservesLinks(t *testing.T) {
	persisted := New()
	persisted.SetCredential("tok", uuid.New(), "dev@example.com")
	persisted.SetLinked("/home/dev/project", LinkedContext{OrgID: uuid.New(), OrgName: "acme"})

	persisted.ClearCredential()

	if persisted.User != nil {
		t.Error("credential not cleared")
	}
	if _, ok := persisted.LinkedFor("/home/dev/project"); !ok {
		t.Error("logout removed the linked context")
	}
}

func TestDefaultPathHonorsEnvironment(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.json")
	t.Setenv("NIMBUS_CONFIG", custom)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if path != custom {
		t.Errorf("path = %q, want %q", path, custom)
	}
}

func TestDefaultPathFallsBackToHome(t *testing.T) {
	t.Setenv("NIMBUS_CONFIG", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	want := filepath.Join(home, ".nimbus", "config.json")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestSavedAppFieldsSerializeAsNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	persisted := New()
	persisted.SetLinked("/home/dev/project", LinkedContext{OrgID: uuid.New(), OrgName: "acme"})
	if err := persisted.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	linked, ok := loaded.LinkedFor("/home/dev/project")
	if !ok {
		t.Fatal("linked context missing after round trip")
	}
	if linked.AppID != nil || linked.AppName != nil {
		t.Errorf("org-only link gained app fields: %+v", linked)
	}
}
