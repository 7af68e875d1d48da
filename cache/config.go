package cache

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	homedir "github.com/mitchellh/go-homedir"
)

// Config carries the cache options that can be fixed ahead of a call.
// Zero values mean "not set": an empty Dir disables caching entirely,
// which is the designed escape hatch for callers who don't want it.
type Config struct {
	// Dir is the base directory for cache entries.
	Dir string `env:"MEMOCACHE_DIR"`

	// Comment is a disambiguating suffix appended to the cache name.
	Comment string `env:"MEMOCACHE_COMMENT"`

	// Autodetect folds simple-typed call arguments into the cache name
	// so distinct inputs don't collide on one entry.
	Autodetect bool `env:"MEMOCACHE_AUTODETECT"`
}

// ConfigFromEnv builds a Config from MEMOCACHE_* environment variables.
func ConfigFromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks whether the configuration values are usable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Length(0, 4096)),
		validation.Field(&c.Comment, validation.Length(0, 1024)),
	)
}

// ResolveDir validates that dir exists, expanding a leading ~ and retrying
// relative to the current working directory before giving up. On failure it
// returns a *DirectoryError listing every location checked; callers must
// not fall back to computing results into a nonexistent directory.
func ResolveDir(dir string) (string, error) {
	if expanded, err := homedir.Expand(dir); err == nil {
		dir = expanded
	}
	if isDir(dir) {
		return dir, nil
	}

	checked := []string{dir}
	if !filepath.IsAbs(dir) {
		if cwd, err := os.Getwd(); err == nil {
			joined := filepath.Join(cwd, dir)
			if isDir(joined) {
				return joined, nil
			}
			checked = append(checked, joined)
		}
	}

	return "", &DirectoryError{Dir: dir, Checked: checked}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
