package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const cacheVersion = 1

// ErrUserNotOpen is returned when a cache is used for a user that has no open session.
var ErrUserNotOpen = errors.New("user cache not open")

type cacheMeta struct {
	Kind    string    `json:"kind"`
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// cacheFile is the on-disk layout of one user's cache entry.
type cacheFile[T any] struct {
	Meta    cacheMeta `json:"_meta"`
	Entries []T       `json:"entries"`
}

// userCachePath returns <dir>/<escaped user id>/<name>, or "" when dir is empty
// (memory-only cache). Escaping keeps user ids from walking out of dir.
func userCachePath(dir, userID, name string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, url.PathEscape(userID), name)
}

// loadEntries reads a cache file. A missing file is an empty cache; a file of another
// kind or version is an error.
func loadEntries[T any](path, kind string) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s cache %s: %w", kind, path, err)
	}

	var file cacheFile[T]
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to decode %s cache %s: %w", kind, path, err)
	}
	if file.Meta.Kind != kind {
		return nil, fmt.Errorf("cache %s holds %q, want %q", path, file.Meta.Kind, kind)
	}
	if file.Meta.Version != cacheVersion {
		return nil, fmt.Errorf("cache %s has version %d, want %d", path, file.Meta.Version, cacheVersion)
	}
	return file.Entries, nil
}

// saveEntries writes the cache to path+".tmp" and renames it over path, so an
// interrupted write never leaves a truncated cache behind.
func saveEntries[T any](path, kind string, entries []T) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	file := cacheFile[T]{
		Meta:    cacheMeta{Kind: kind, Version: cacheVersion, SavedAt: time.Now().UTC()},
		Entries: entries,
	}
	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s cache: %w", kind, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write %s cache: %w", kind, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s cache: %w", kind, err)
	}
	return nil
}
