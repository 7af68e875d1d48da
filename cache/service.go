package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-memo-cache/internal/diskstore"
)

// Store persists opaque cache payloads addressed by filesystem path.
// It is exported so that other packages can swap in alternate backends
// while keeping the load-or-compute protocol.
type Store interface {
	// Path maps a derived cache name to its location under dir.
	Path(dir, name string) string

	// Read returns the payload at path. It reports ErrNotFound when no
	// entry exists and wraps ErrCorruptEntry when one exists but cannot
	// be read back.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write persists the payload at path atomically: a failed or
	// interrupted write must never leave a path that passes the
	// existence check.
	Write(ctx context.Context, path string, data []byte) error
}

// NewStore returns the default store: gzip-compressed JSON files on disk.
func NewStore() Store {
	return diskstore.New()
}

// FetchFn computes the value to cache when no usable entry exists.
type FetchFn[T any] func(ctx context.Context) (T, error)

// LoadOrCompute returns the entry stored at path, or runs fetch and
// persists its result. A present entry is trusted verbatim; a corrupt one
// (unreadable gzip or undecodable JSON) is logged and treated as a miss so
// the caller gets a fresh value instead of a decode failure. Errors from
// fetch pass through unchanged and leave nothing on disk.
//
// The logger attached to ctx via log.WithContext receives one line per
// miss and one warning per corrupt entry.
func LoadOrCompute[T any](ctx context.Context, store Store, path string, fetch FetchFn[T]) (T, error) {
	var zero T
	logger := log.FromContext(ctx)

	data, err := store.Read(ctx, path)
	switch {
	case err == nil:
		var cached T
		jerr := json.Unmarshal(data, &cached)
		if jerr == nil {
			return cached, nil
		}
		logger.Warn("discarding corrupt cache entry", "path", path, "error", jerr)
	case errors.Is(err, ErrCorruptEntry):
		logger.Warn("discarding corrupt cache entry", "path", path, "error", err)
	case errors.Is(err, ErrNotFound):
		// plain miss
	default:
		return zero, err
	}

	logger.Info("generating cache entry", "path", path)

	result, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	data, err = json.Marshal(result)
	if err != nil {
		return zero, &EncodeError{Path: path, Err: err}
	}
	if err := store.Write(ctx, path, data); err != nil {
		return zero, err
	}
	return result, nil
}
