package memocache

import (
	"context"
	"reflect"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-memo-cache/cache"
)

// Func is the shape of a computation the decorator memoizes: context first,
// then the original arguments, returning a JSON-serializable result.
type Func[T any] func(ctx context.Context, args ...any) (T, error)

// DirProvider supplies a cache directory from the value being operated on.
// When a call's first argument implements it and no directory was fixed at
// wrap time, its directory is used.
type DirProvider interface {
	CacheDir() string
}

// Memoized decorates a computation with write-through file caching: the
// first call for a derived cache name computes and persists, every later
// call with the same name short-circuits to the stored value.
type Memoized[T any] struct {
	fn Func[T]
	w  *wrapper
}

// wrapper holds the non-generic wrap-time state shared by every call.
type wrapper struct {
	name   string
	cfg    cache.Config
	store  cache.Store
	namer  cache.KeyNamer
	logger *log.Logger
	keys   *xsync.MapOf[string, struct{}]
}

// New builds a Memoized computation. name seeds the cache name; when empty,
// the function's runtime name is used. Options fixed here win, per option,
// over call-time overrides attached with WithCallConfig.
func New[T any](name string, fn Func[T], opts ...Option) *Memoized[T] {
	w := &wrapper{
		name:   name,
		store:  cache.NewStore(),
		namer:  cache.NewDefaultKeyNamer(),
		logger: log.Default(),
		keys:   xsync.NewMapOf[string, struct{}](),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name == "" {
		w.name = funcName(fn)
	}
	return &Memoized[T]{fn: fn, w: w}
}

// Wrap is the function-to-function form of New.
func Wrap[T any](name string, fn Func[T], opts ...Option) Func[T] {
	return New(name, fn, opts...).Call
}

// Call resolves configuration for this invocation, then serves the cached
// result or computes, persists, and returns a fresh one. When no directory
// resolves the underlying computation runs directly and nothing touches
// disk. Errors from the computation pass through unchanged.
func (m *Memoized[T]) Call(ctx context.Context, args ...any) (T, error) {
	var zero T

	dir, comment, autodetect := m.w.resolve(ctx, args)
	if dir == "" {
		return m.fn(ctx, args...)
	}

	resolved, err := cache.ResolveDir(dir)
	if err != nil {
		return zero, err
	}

	if autodetect {
		comment = joinTokens(comment, cache.DetectArgTokens(args...))
	}

	name := m.w.namer.CacheName(m.w.name, comment)
	path := m.w.store.Path(resolved, name)
	m.w.keys.Store(path, struct{}{})

	ctx = log.WithContext(ctx, m.w.logger)
	return cache.LoadOrCompute(ctx, m.w.store, path, func(ctx context.Context) (T, error) {
		return m.fn(ctx, args...)
	})
}

// Keys lists the cache paths this wrapper has addressed so far.
func (m *Memoized[T]) Keys() []string {
	var keys []string
	m.w.keys.Range(func(k string, _ struct{}) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// resolve applies the per-option precedence: wrap-time values win, then the
// first argument's DirProvider capability (directory only), then call-time
// overrides carried on the context. Each option resolves independently.
func (w *wrapper) resolve(ctx context.Context, args []any) (dir, comment string, autodetect bool) {
	call := callOverrides(ctx)

	dir = w.cfg.Dir
	if dir == "" && len(args) > 0 {
		if p, ok := args[0].(DirProvider); ok {
			dir = p.CacheDir()
		}
	}
	if dir == "" {
		dir = call.Dir
	}

	comment = w.cfg.Comment
	if comment == "" {
		comment = call.Comment
	}

	autodetect = w.cfg.Autodetect
	if !autodetect {
		autodetect = call.Autodetect
	}

	return dir, comment, autodetect
}

func joinTokens(comment string, tokens []string) string {
	if len(tokens) == 0 {
		return comment
	}
	if comment == "" {
		return strings.Join(tokens, "_")
	}
	return comment + "_" + strings.Join(tokens, "_")
}

// funcName recovers a usable cache name from the function's runtime symbol,
// keeping only the segment after the package path. Method values carry a
// "-fm" suffix that is dropped.
func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
