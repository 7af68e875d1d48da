package memocache

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-memo-cache/cache"
)

// Option fixes wrap-time behavior. Values set here win over call-time
// overrides for the same option.
type Option func(*wrapper)

// WithConfig fixes directory, comment, and autodetect at once.
func WithConfig(cfg cache.Config) Option {
	return func(w *wrapper) { w.cfg = cfg }
}

// WithDir fixes the cache directory.
func WithDir(dir string) Option {
	return func(w *wrapper) { w.cfg.Dir = dir }
}

// WithComment fixes the disambiguating suffix appended to the cache name.
func WithComment(comment string) Option {
	return func(w *wrapper) { w.cfg.Comment = comment }
}

// WithAutodetect folds simple-typed call arguments into the cache name.
func WithAutodetect() Option {
	return func(w *wrapper) { w.cfg.Autodetect = true }
}

// WithLogger routes miss notices and corruption warnings.
func WithLogger(logger *log.Logger) Option {
	return func(w *wrapper) { w.logger = logger }
}

// WithStore swaps the persistence backend.
func WithStore(store cache.Store) Option {
	return func(w *wrapper) { w.store = store }
}

// WithNamer swaps the cache-name derivation policy.
func WithNamer(namer cache.KeyNamer) Option {
	return func(w *wrapper) { w.namer = namer }
}

// CallConfig carries per-call overrides on the context. Zero fields are
// treated as absent; they never clear a wrap-time value.
type CallConfig struct {
	Dir        string
	Comment    string
	Autodetect bool
}

type callConfigKey struct{}

// WithCallConfig attaches call-time cache overrides to ctx. Wrap-time
// options take precedence over these, option by option.
func WithCallConfig(ctx context.Context, cfg CallConfig) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callConfigKey{}, cfg)
}

func callOverrides(ctx context.Context) CallConfig {
	if ctx == nil {
		return CallConfig{}
	}
	if cfg, ok := ctx.Value(callConfigKey{}).(CallConfig); ok {
		return cfg
	}
	return CallConfig{}
}
