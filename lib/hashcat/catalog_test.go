package hashcat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = "{\r\n" +
	`"100": {"name": "SHA1", "category": "Raw Hash", "example_hash": "b89eaac7e61417341b710b727768294d0e6a277b"},` + "\n" +
	`"0": {"name": "MD5", "category": "Raw Hash", "example_hash": "8743b52063cd84097a65d1633f5c74f5"},` + "\n" +
	`"1000": {"name": "NTLM", "category": "Operating System"},` + "\n" +
	`"bogus": {"name": "ignored"}` + "\n}"

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, catalog, 3)

	assert.Equal(t, 0, catalog[0].ID)
	assert.Equal(t, "0 | MD5", catalog[0].Label())
	assert.Equal(t, "Raw Hash", catalog[0].Category)
	assert.Equal(t, 100, catalog[1].ID)
	assert.Equal(t, 1000, catalog[2].ID)
	assert.Empty(t, catalog[2].Example)
}

func TestParseCatalog_Invalid(t *testing.T) {
	for name, input := range map[string]string{
		"empty":     "",
		"array":     `[1,2,3]`,
		"null":      `null`,
		"error msg": "Error executing hashcat --example-hashes",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(input))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestCatalog_LookupAndFilter(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	mode, ok := catalog.Lookup(1000)
	require.True(t, ok)
	assert.Equal(t, "NTLM", mode.Name)

	_, ok = catalog.Lookup(5)
	assert.False(t, ok)

	assert.Len(t, catalog.Filter(""), 3)
	assert.Len(t, catalog.Filter("raw hash"), 2)
	assert.Len(t, catalog.Filter("ntlm"), 1)
	assert.Len(t, catalog.Filter("100"), 2, "matches on the id part of the label")
	assert.Empty(t, catalog.Filter("bcrypt"))
}

func TestCatalogCache_RoundTrip(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "cache", "hash_modes.json")
	catalog := Catalog{{ID: 0, Name: "MD5"}, {ID: 100, Name: "SHA1"}}

	require.NoError(t, saveCatalogCache(cachePath, "/opt/hashcat", "v6.2.6", catalog))

	loaded, err := loadCatalogCache(cachePath, "/opt/hashcat", "v6.2.6")
	require.NoError(t, err)
	assert.Equal(t, catalog, loaded)

	stale, err := loadCatalogCache(cachePath, "/opt/hashcat", "v7.0.0")
	require.NoError(t, err)
	assert.Nil(t, stale, "a different version must miss")

	other, err := loadCatalogCache(cachePath, "/usr/bin/hashcat", "v6.2.6")
	require.NoError(t, err)
	assert.Nil(t, other, "a different binary must miss")
}

func TestCatalogCache_CorruptFileIsRemoved(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "hash_modes.json")
	require.NoError(t, os.WriteFile(cachePath, []byte("{not json"), 0o600))

	loaded, err := loadCatalogCache(cachePath, "/opt/hashcat", "v6.2.6")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(cachePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCatalogCache_MissingFile(t *testing.T) {
	loaded, err := loadCatalogCache(filepath.Join(t.TempDir(), "missing.json"), "x", "y")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	loaded, err = loadCatalogCache("", "x", "y")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
