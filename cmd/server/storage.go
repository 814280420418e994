package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/namaz/internal/aladhan"
	"github.com/Nixie-Tech-LLC/namaz/internal/config"
	"github.com/Nixie-Tech-LLC/namaz/internal/db"
	"github.com/Nixie-Tech-LLC/namaz/internal/mqtt"
	"github.com/Nixie-Tech-LLC/namaz/internal/redis"
)

// InitStore selects and returns the configured adjustment store.
func InitStore(cfg *config.Config) db.Store {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn().Msg("using in-memory adjustment store, adjustments are lost on restart")
		return db.NewMemoryStore()
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	if err := db.RunMigrations(conn, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	return db.NewStore(conn)
}

// InitProvider returns the Al Adhan client, wrapped in a redis cache when
// REDIS_ADDRESS is set. The returned cache is nil when caching is off.
func InitProvider(cfg *config.Config) (aladhan.Fetcher, *redis.Cache) {
	client := aladhan.NewClient(cfg.AladhanBaseURL, aladhan.Location{
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Method:    cfg.Method,
		School:    cfg.School,
	}, cfg.UpstreamTimeout)

	if cfg.RedisAddress == "" {
		return client, nil
	}

	cache := redis.New(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword, "namaz:")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("redis unreachable, caching disabled")
		cache.Close()
		return client, nil
	}

	log.Info().Str("address", cfg.RedisAddress).Dur("ttl", cfg.CacheTTL).Msg("caching upstream timings in redis")
	return aladhan.NewCachedClient(client, cache, cfg.CacheTTL), cache
}

// InitNotifier connects to the MQTT broker when one is configured.
func InitNotifier(cfg *config.Config) *mqtt.Notifier {
	if cfg.MQTTBrokerURL == "" {
		return nil
	}
	notifier, err := mqtt.Connect(cfg.MQTTBrokerURL, cfg.MQTTClientID, 5*time.Second)
	if err != nil {
		log.Warn().Err(err).Str("broker", cfg.MQTTBrokerURL).Msg("MQTT unavailable, adjustment events disabled")
		return nil
	}
	return notifier
}
