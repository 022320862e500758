// Package testhelpers provides reusable test utilities for hashcat-gui packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/unclesp1d3r/hashcatgui/appstate"
)

// FakeHashcat writes an executable shell script standing in for hashcat and
// returns its path. body is the script after the shebang line. The test is
// skipped where no POSIX shell is available.
func FakeHashcat(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-ins require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "hashcat")
	//nolint:gosec // test script must be executable
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700); err != nil {
		t.Fatalf("Failed to write fake hashcat: %v", err)
	}

	return path
}

// CreateTestFile creates a file with the given content in dir and returns its path.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, 0o600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	return filePath
}

// SetupTestState points appstate.State at a temporary data directory and
// restores the previous state when the test finishes.
func SetupTestState(t *testing.T) string {
	t.Helper()

	saved := appstate.State
	t.Cleanup(func() { appstate.State = saved })

	dataDir := t.TempDir()
	appstate.State.DataPath = dataDir
	appstate.State.CatalogCachePath = filepath.Join(dataDir, "hash_modes.json")
	appstate.State.ProfilePath = ""
	appstate.State.ConfigFile = ""

	return dataDir
}
