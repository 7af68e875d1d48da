package di

import (
	"github.com/charmbracelet/log"

	"github.com/goliatone/go-memo-cache/cache"
	"github.com/goliatone/go-memo-cache/memocache"
)

// Container provides dependency injection for memoization components.
// It manages singleton instances of the store, key namer, and logger, and
// provides factory methods for creating memoized computations that share
// one configuration.
type Container struct {
	store  cache.Store
	namer  cache.KeyNamer
	logger *log.Logger
	config cache.Config
}

// NewContainer creates a new DI container with the provided configuration.
// It validates the configuration and sets up the default disk store and
// key namer.
func NewContainer(config cache.Config) (*Container, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Container{
		store:  cache.NewStore(),
		namer:  cache.NewDefaultKeyNamer(),
		logger: log.Default(),
		config: config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container configured from the
// MEMOCACHE_* environment variables. This is a convenience constructor for
// typical CLI and batch use.
func NewContainerWithDefaults() (*Container, error) {
	cfg, err := cache.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewContainer(cfg)
}

// Store returns the singleton store instance.
func (c *Container) Store() cache.Store {
	return c.store
}

// KeyNamer returns the singleton key namer instance.
func (c *Container) KeyNamer() cache.KeyNamer {
	return c.namer
}

// Logger returns the logger shared by memoized computations built from
// this container.
func (c *Container) Logger() *log.Logger {
	return c.logger
}

// SetLogger replaces the shared logger. It affects computations built
// after the call.
func (c *Container) SetLogger(logger *log.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() cache.Config {
	return c.config
}

// NewMemoized builds a memoized computation wired to the container's store,
// namer, logger, and configuration. Additional options are applied last so
// callers can override any of them per computation.
//
// Since Go methods cannot have type parameters, this is provided as a
// package-level function. Example: NewMemoized[Report](container, "monthly_report", build)
func NewMemoized[T any](container *Container, name string, fn memocache.Func[T], opts ...memocache.Option) *memocache.Memoized[T] {
	base := []memocache.Option{
		memocache.WithConfig(container.config),
		memocache.WithStore(container.store),
		memocache.WithNamer(container.namer),
		memocache.WithLogger(container.logger),
	}
	return memocache.New(name, fn, append(base, opts...)...)
}
