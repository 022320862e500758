package hashcat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// HashMode is one entry of hashcat's self-reported example-hash catalog.
type HashMode struct {
	ID       int    `json:"id"`       // Numeric --hash-type value
	Name     string `json:"name"`     // Algorithm name, e.g. "MD5"
	Category string `json:"category"` // Category reported by hashcat, e.g. "Raw Hash"
	Example  string `json:"example"`  // Example hash
}

// Label returns the "<id> | <name>" form used in the hash type list.
func (h HashMode) Label() string {
	return strconv.Itoa(h.ID) + " | " + h.Name
}

// Catalog is the list of supported hash modes sorted by ID.
type Catalog []HashMode

// exampleHashEntry mirrors the fields read from each --example-hashes --machine-readable value.
type exampleHashEntry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	ExampleHash string `json:"example_hash"`
}

// ParseCatalog parses the JSON object printed by `hashcat --example-hashes --machine-readable`.
// Keys that are not decimal mode numbers are skipped.
func ParseCatalog(data []byte) (Catalog, error) {
	data = bytes.ReplaceAll(data, []byte("\r"), nil)
	data = bytes.ReplaceAll(data, []byte("\n"), nil)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if raw == nil {
		return nil, ErrInvalidCatalog
	}

	catalog := make(Catalog, 0, len(raw))
	for key, value := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}

		var entry exampleHashEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			continue
		}

		catalog = append(catalog, HashMode{
			ID:       id,
			Name:     entry.Name,
			Category: entry.Category,
			Example:  entry.ExampleHash,
		})
	}

	sort.Slice(catalog, func(i, j int) bool { return catalog[i].ID < catalog[j].ID })

	return catalog, nil
}

// Lookup returns the hash mode with the given ID.
func (c Catalog) Lookup(id int) (HashMode, bool) {
	i := sort.Search(len(c), func(i int) bool { return c[i].ID >= id })
	if i < len(c) && c[i].ID == id {
		return c[i], true
	}

	return HashMode{}, false
}

// Filter returns the hash modes whose label or category contains substr, ignoring case.
// An empty substr returns the whole catalog.
func (c Catalog) Filter(substr string) Catalog {
	substr = strings.ToLower(strings.TrimSpace(substr))
	if substr == "" {
		return c
	}

	var out Catalog
	for _, mode := range c {
		if strings.Contains(strings.ToLower(mode.Label()), substr) ||
			strings.Contains(strings.ToLower(mode.Category), substr) {
			out = append(out, mode)
		}
	}

	return out
}
