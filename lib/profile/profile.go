// Package profile saves and restores the attack form as a JSON document.
//
// A profile holds a single object under the RootKey. Fields absent from a
// loaded profile keep their current values; the command preview is derived
// state and never stored.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
)

const (
	// RootKey is the top-level key every profile stores the form under.
	RootKey = "MainWindow"
	// SchemaVersion is the newest profile layout this build reads and writes.
	SchemaVersion = 1

	filePermissions = 0o600
	dirPermissions  = 0o750
)

var (
	// ErrOpen is returned when the profile file cannot be read or written.
	ErrOpen = errors.New("cannot open file")
	// ErrInvalidJSON is returned when the profile is not valid JSON for the form.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrMissingKey is returned when the profile lacks the RootKey object.
	ErrMissingKey = errors.New("missing " + RootKey + " key")
	// ErrSchemaVersion is returned for profiles written by a newer release.
	ErrSchemaVersion = errors.New("unsupported schema version")
)

// document is the object stored under RootKey.
type document struct {
	SchemaVersion int `json:"schema_version"`
	*form.Form
}

// Marshal encodes the form as an indented profile document.
func Marshal(f *form.Form) ([]byte, error) {
	data, err := json.MarshalIndent(map[string]document{
		RootKey: {SchemaVersion: SchemaVersion, Form: f},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	return append(data, '\n'), nil
}

// Unmarshal decodes a profile document into f. On error f is left untouched.
func Unmarshal(data []byte, f *form.Form) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	raw, ok := root[RootKey]
	if !ok {
		return ErrMissingKey
	}

	var header struct {
		SchemaVersion int             `json:"schema_version"`
		Wordlists     json.RawMessage `json:"wordlists"`
	}
	if err := json.Unmarshal(raw, &header); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if header.SchemaVersion > SchemaVersion {
		return fmt.Errorf("%w: %d (supported: %d)", ErrSchemaVersion, header.SchemaVersion, SchemaVersion)
	}

	next := *f
	next.Wordlists = slices.Clone(f.Wordlists)
	if header.Wordlists != nil {
		// A stored list replaces the current one row for row.
		next.Wordlists = nil
	}
	next.OutfileFormat = slices.Clone(f.OutfileFormat)

	if err := json.Unmarshal(raw, &document{Form: &next}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if next.Wordlists == nil {
		next.Wordlists = []form.Wordlist{}
	}

	*f = next

	return nil
}

// Save writes the form to path, replacing any existing file atomically.
func Save(path string, f *form.Form) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, filePermissions); err != nil {
		return fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			appstate.Logger.Warn("Failed to clean up temp profile file", "error", removeErr, "path", tmpPath)
		}

		return fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}

	appstate.Logger.Debug("Profile saved", "path", path)

	return nil
}

// Load reads the profile at path into f.
func Load(path string, f *form.Form) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}

	if err := Unmarshal(data, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	appstate.Logger.Debug("Profile loaded", "path", path)

	return nil
}
