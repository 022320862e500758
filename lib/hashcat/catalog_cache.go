package hashcat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/unclesp1d3r/hashcatgui/appstate"
)

const (
	cacheFilePermissions = 0o600 // File permissions for the catalog cache
	cacheDirPermissions  = 0o750 // Directory permissions for the cache parent
)

// catalogCache is the on-disk layout of the cached catalog.
type catalogCache struct {
	HashcatPath string  `json:"hashcat_path"`
	Version     string  `json:"version"`
	Modes       Catalog `json:"modes"`
}

// saveCatalogCache marshals the catalog to JSON and writes it atomically via
// a temporary file and rename.
func saveCatalogCache(cachePath, hashcatPath, version string, catalog Catalog) error {
	if cachePath == "" {
		return errors.New("catalog cache path not configured")
	}

	data, err := json.Marshal(catalogCache{HashcatPath: hashcatPath, Version: version, Modes: catalog})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), cacheDirPermissions); err != nil {
		return fmt.Errorf("failed to create catalog cache directory: %w", err)
	}

	tmpPath := cachePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, cacheFilePermissions); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}

	if err := os.Rename(tmpPath, cachePath); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			appstate.Logger.Warn("Failed to clean up temp cache file", "error", removeErr, "path", tmpPath)
		}

		return fmt.Errorf("failed to rename catalog cache: %w", err)
	}

	appstate.Logger.Debug("Hash mode catalog cached to disk", "path", cachePath, "modes", len(catalog))

	return nil
}

// loadCatalogCache returns the cached catalog if it was produced by the same
// binary and version. Returns (nil, nil) when no usable cache exists; corrupt
// cache files are removed.
func loadCatalogCache(cachePath, hashcatPath, version string) (Catalog, error) {
	if cachePath == "" || !fileutil.IsExist(cachePath) {
		return nil, nil
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var cache catalogCache
	if err := json.Unmarshal(data, &cache); err != nil {
		appstate.Logger.Warn("Catalog cache file is corrupt, removing", "error", err, "path", cachePath)
		if removeErr := os.Remove(cachePath); removeErr != nil && !os.IsNotExist(removeErr) {
			appstate.Logger.Warn("Failed to remove corrupt catalog cache", "error", removeErr, "path", cachePath)
		}

		return nil, nil
	}

	if cache.HashcatPath != hashcatPath || cache.Version != version || len(cache.Modes) == 0 {
		appstate.Logger.Debug("Catalog cache is stale", "path", cachePath,
			"cached_version", cache.Version, "version", version)

		return nil, nil
	}

	return cache.Modes, nil
}

// LoadCatalog returns the hash-mode catalog for the runner's binary, using the
// cache at cachePath unless refresh is set. Cache failures are logged, not returned.
func LoadCatalog(ctx context.Context, r *Runner, cachePath string, refresh bool) (Catalog, error) {
	version, err := r.Version(ctx)
	if err != nil {
		return nil, err
	}

	if !refresh {
		cached, err := loadCatalogCache(cachePath, r.Path, version)
		if err != nil {
			appstate.Logger.Warn("Failed to load catalog cache", "error", err)
		}
		if cached != nil {
			appstate.Logger.Debug("Loaded hash modes from cache", "path", cachePath, "modes", len(cached))

			return cached, nil
		}
	}

	catalog, err := r.ExampleHashes(ctx)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if err := saveCatalogCache(cachePath, r.Path, version, catalog); err != nil {
			appstate.Logger.Warn("Failed to save catalog cache", "error", err)
		}
	}

	return catalog, nil
}
