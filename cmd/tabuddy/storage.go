package main

import (
	"github.com/tabuddy/tabuddy/config"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/postgres"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/redis"
)

// storageOptions converts the storage sections of cfg into persistence.Options.
func storageOptions(cfg *config.Config) persistence.Options {
	return persistence.Options{
		Backend: cfg.Storage.Backend,
		Path:    cfg.DataPath(),
		Postgres: postgres.Config{
			URL:             cfg.Postgres.URL,
			MaxConns:        cfg.Postgres.MaxConns,
			MinConns:        cfg.Postgres.MinConns,
			MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
			MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
			ConnectTimeout:  cfg.Postgres.ConnectTimeout,
		},
		Redis: redis.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			Key:          cfg.Redis.Key,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		},
		ConnectAttempts: cfg.Storage.ConnectAttempts,
	}
}
