// Package persistence selects and opens the configured storage backend.
package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/jsonfile"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/postgres"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/redis"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/sqlite"
	"github.com/tabuddy/tabuddy/pkg/circuitbreaker"
	"github.com/tabuddy/tabuddy/pkg/logger"
	"github.com/tabuddy/tabuddy/pkg/retry"
)

// Supported backends.
const (
	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Backends lists every supported backend name.
var Backends = []string{BackendJSON, BackendSQLite, BackendPostgres, BackendRedis}

// IsValidBackend reports whether name is a supported backend.
func IsValidBackend(name string) bool {
	for _, b := range Backends {
		if strings.EqualFold(b, name) {
			return true
		}
	}
	return false
}

// Options selects a backend and carries the settings for each.
type Options struct {
	Backend string

	// Path is the data file for the json and sqlite backends.
	Path string

	Postgres postgres.Config
	Redis    redis.Config

	// ConnectAttempts bounds dialling PostgreSQL and Redis.
	ConnectAttempts int
}

// Handle is an open repository plus the function releasing it.
type Handle struct {
	Repository buddy.Repository
	Backend    string
	close      func() error
}

// Close releases the backend's resources.
func (h *Handle) Close() error {
	if h == nil || h.close == nil {
		return nil
	}
	return h.close()
}

// Open opens the backend named by opts.Backend.
func Open(ctx context.Context, opts Options, log *logger.Logger) (*Handle, error) {
	if log == nil {
		log = logger.Nop()
	}
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" {
		backend = BackendJSON
	}
	log = log.With(logger.Component("persistence"), logger.Backend(backend))

	switch backend {
	case BackendJSON:
		return &Handle{Repository: jsonfile.New(opts.Path), Backend: backend}, nil

	case BackendSQLite:
		store, err := sqlite.Open(opts.Path)
		if err != nil {
			return nil, err
		}
		return &Handle{Repository: store, Backend: backend, close: store.Close}, nil

	case BackendPostgres:
		conn, err := retry.DoWithData(ctx, func(ctx context.Context) (*postgres.Connection, error) {
			return postgres.NewConnection(ctx, opts.Postgres)
		}, retry.ConnectOptions(opts.ConnectAttempts, onRetry(log))...)
		if err != nil {
			return nil, err
		}
		if err := postgres.NewMigrator(conn).Migrate(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		return &Handle{
			Repository: NewGuarded(backend, postgres.NewStore(conn), circuitbreaker.DefaultConfig(), log),
			Backend:    backend,
			close: func() error {
				conn.Close()
				return nil
			},
		}, nil

	case BackendRedis:
		cache, err := retry.DoWithData(ctx, func(ctx context.Context) (*redis.Cache, error) {
			return redis.NewCache(ctx, opts.Redis)
		}, retry.ConnectOptions(opts.ConnectAttempts, onRetry(log))...)
		if err != nil {
			return nil, err
		}
		return &Handle{
			Repository: NewGuarded(backend, redis.NewStore(cache, opts.Redis.Key), circuitbreaker.DefaultConfig(), log),
			Backend:    backend,
			close:      cache.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q (want one of %s)", opts.Backend, strings.Join(Backends, ", "))
}

func onRetry(log *logger.Logger) func(int, error, time.Duration) {
	return func(attempt int, err error, delay time.Duration) {
		log.Warn("storage connection failed, retrying",
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay),
			logger.Err(err),
		)
	}
}
