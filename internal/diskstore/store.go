package diskstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Suffix is the filename suffix shared by every cache entry.
const Suffix = ".cache.gz"

var (
	// ErrNotFound reports that no entry exists at the requested path.
	ErrNotFound = errors.New("diskstore: entry not found")

	// ErrCorruptEntry reports an entry that exists on disk but whose
	// compressed payload cannot be read back.
	ErrCorruptEntry = errors.New("diskstore: corrupt entry")
)

// Store persists cache entries as gzip-compressed files. It never creates
// the base directory; callers resolve and validate it first. Writes go
// through a temporary file in the target directory followed by a rename,
// so a crash mid-write cannot leave a path that exists but holds a partial
// payload.
type Store struct {
	mode os.FileMode
}

// New returns a Store writing entries with 0o644 permissions.
func New() *Store {
	return &Store{mode: 0o644}
}

// NewWithMode returns a Store writing entries with the given permissions.
func NewWithMode(mode os.FileMode) *Store {
	return &Store{mode: mode}
}

// Path returns the location of the entry named name under dir.
func (s *Store) Path(dir, name string) string {
	return filepath.Join(dir, name+Suffix)
}

// Read returns the decompressed payload stored at path. It reports
// ErrNotFound when no file exists there and ErrCorruptEntry when a file
// exists but is not a readable gzip stream.
func (s *Store) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("diskstore: open %s: %w", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptEntry, path, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptEntry, path, err)
	}
	return data, nil
}

// Write compresses data and moves it into place at path atomically.
// The payload is compressed in memory first so nothing is staged on disk
// when compression fails.
func (s *Store) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("diskstore: compress %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("diskstore: compress %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("diskstore: create temp in %s: %w", dir, err)
	}

	_, werr := tmp.Write(buf.Bytes())
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp.Name())
		if werr != nil {
			return fmt.Errorf("diskstore: write %s: %w", path, werr)
		}
		return fmt.Errorf("diskstore: write %s: %w", path, cerr)
	}

	if err := os.Chmod(tmp.Name(), s.mode); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("diskstore: chmod %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("diskstore: rename %s: %w", path, err)
	}
	return nil
}
