package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Surabhi222005/MentorMe/internal/cache"
	"github.com/Surabhi222005/MentorMe/internal/config"
	"github.com/Surabhi222005/MentorMe/internal/database"
	"github.com/Surabhi222005/MentorMe/internal/history"
	"go.uber.org/zap"
)

// openHistory connects the history backend named in the config.
func openHistory(ctx context.Context, cfg *config.Config, log *zap.Logger) (*history.Store, error) {
	var backend history.Backend

	switch cfg.History.Backend {
	case config.BackendRedis:
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, 5*time.Second)
		if err != nil {
			return nil, fmt.Errorf("redis history: %w", err)
		}
		backend = history.NewRedisBackend(client, cfg.Redis.HistoryTTL)
	case config.BackendPostgres:
		pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("postgres history: %w", err)
		}
		backend = history.NewPostgresBackend(pool)
	case config.BackendMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, fmt.Errorf("mongo history: %w", err)
		}
		mb, err := history.NewMongoBackend(ctx, client, cfg.Mongo.Database)
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo history: %w", err)
		}
		backend = mb
	default:
		backend = history.NewMemoryBackend()
	}

	log.Info("history store ready", zap.String("backend", cfg.History.Backend))
	return history.New(backend), nil
}
