package cache

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-memo-cache/internal/diskstore"
)

// Sentinels shared with the default disk store. Custom Store
// implementations should wrap the same values so LoadOrCompute can
// classify their failures.
var (
	// ErrNotFound is returned by Store.Read when no entry exists at a path.
	ErrNotFound = diskstore.ErrNotFound

	// ErrCorruptEntry marks an entry that exists but cannot be read back.
	ErrCorruptEntry = diskstore.ErrCorruptEntry
)

// DirectoryError reports a cache directory that could not be resolved to an
// existing location. Hosts decide whether to abort, disable caching, or
// prompt; the library never terminates the process.
type DirectoryError struct {
	// Dir is the directory as configured.
	Dir string

	// Checked lists every location that was probed.
	Checked []string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("cache: directory %q not found (checked %s)", e.Dir, strings.Join(e.Checked, ", "))
}

// EncodeError reports a computed result that could not be serialized for
// persistence. Nothing is written to disk when encoding fails.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cache: encode entry %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
