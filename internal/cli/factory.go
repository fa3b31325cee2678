// Package cli wires configuration into a ready-to-use engine for the
// command-line frontends.
package cli

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	salescoach "github.com/nsfeld/salescoach"
	"github.com/nsfeld/salescoach/internal/config"
	"github.com/nsfeld/salescoach/pkg/adapters/memory"
	"github.com/nsfeld/salescoach/pkg/adapters/middleware"
	redisstore "github.com/nsfeld/salescoach/pkg/adapters/redis"
	"github.com/nsfeld/salescoach/pkg/persona"
	"github.com/nsfeld/salescoach/pkg/ports"
	"github.com/nsfeld/salescoach/pkg/session"
)

// BuildEngine assembles the store, session manager, persona and hooks from
// the configuration. The returned cleanup closes the Redis client when one
// was opened.
func BuildEngine(cfg *config.Config, logger *slog.Logger, hooks salescoach.Hooks) (*salescoach.Engine, func(), error) {
	store, locker, cleanup, err := buildStore(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	store, err = wrapStore(store, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	mgrOpts := []session.Option{session.WithLogger(logger)}
	if locker != nil {
		mgrOpts = append(mgrOpts, session.WithLocker(locker))
	}
	manager := session.NewManager(store, mgrOpts...)

	adapter := buildPersona(cfg, logger)

	engine := salescoach.New(manager,
		salescoach.WithLogger(logger),
		salescoach.WithPersona(adapter),
		salescoach.WithHooks(hooks),
	)
	return engine, cleanup, nil
}

func buildStore(cfg *config.Config, logger *slog.Logger) (ports.SessionStore, ports.DistributedLocker, func(), error) {
	switch cfg.Store.Driver {
	case "memory":
		return memory.NewStore(), nil, func() {}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		var storeOpts []redisstore.Option
		if ttl := cfg.Store.Redis.TTL.Std(); ttl > 0 {
			storeOpts = append(storeOpts, redisstore.WithTTL(ttl))
		}
		store := redisstore.NewFromClient(client, storeOpts...)

		var locker ports.DistributedLocker
		if cfg.Store.Redis.Lock {
			locker = redisstore.NewLocker(client, "salescoach:")
		}
		logger.Info("using redis session store", "addr", cfg.Store.Redis.Addr, "lock", cfg.Store.Redis.Lock)
		return store, locker, func() { _ = client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// wrapStore applies the configured persistence middlewares.
func wrapStore(store ports.SessionStore, cfg *config.Config, logger *slog.Logger) (ports.SessionStore, error) {
	var mws []middleware.Middleware
	if cfg.Store.MaskPII {
		mws = append(mws, middleware.NewPIIMiddleware(nil))
		logger.Info("PII masking enabled for stored sessions")
	}
	if env := cfg.Store.EncryptionKeyEnv; env != "" {
		key, err := base64.StdEncoding.DecodeString(os.Getenv(env))
		if err != nil || len(key) != 32 {
			return nil, fmt.Errorf("%s must hold a base64 32-byte key", env)
		}
		mws = append(mws, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}))
		logger.Info("session encryption at rest enabled")
	}
	return middleware.Chain(store, mws...), nil
}

func buildPersona(cfg *config.Config, logger *slog.Logger) *persona.Adapter {
	backend := persona.NewOpenAIBackend(func(o *persona.OpenAIOptions) {
		if cfg.Persona.Model != "" {
			o.Model = cfg.Persona.Model
		}
	})

	var opts []persona.AdapterOption
	opts = append(opts, persona.WithLogger(logger))
	if d := cfg.Persona.Timeout.Std(); d > 0 {
		opts = append(opts, persona.WithTimeout(d))
	}
	if cfg.Persona.MaxReplyChars > 0 {
		opts = append(opts, persona.WithMaxReplyChars(cfg.Persona.MaxReplyChars))
	}

	if backend.Available() {
		logger.Info("persona backend enabled", "model", cfg.Persona.Model)
	} else {
		logger.Info("no persona API key, using deterministic fallback")
	}
	return persona.NewAdapter(backend, opts...)
}
