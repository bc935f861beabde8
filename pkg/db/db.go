package db

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/itacademy/dice-game-api/pkg/config"
)

var DB *gorm.DB
var Rdb *redis.Client

// Init opens the postgres and redis connections and stores them in the
// package-level handles.
func Init(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	return redisConnection(cfg.Redis)
}

func redisConnection(cfg config.RedisConfig) error {
	var tlsConfig *tls.Config
	if cfg.TLS {
		tlsConfig = &tls.Config{}
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Username:  cfg.Username,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConfig,
	})

	if err := Rdb.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	return nil
}
