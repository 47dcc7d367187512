package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second
	defaultPoolSize     = 10
)

type Config struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"6379"`
	Username     string `envconfig:"USERNAME"`
	Password     string `envconfig:"PASSWORD"`
	Database     int    `envconfig:"DATABASE" default:"0"`
	DialTimeout  int    `envconfig:"DIAL_TIMEOUT" default:"5"`  // в секундах
	ReadTimeout  int    `envconfig:"READ_TIMEOUT" default:"3"`  // в секундах
	WriteTimeout int    `envconfig:"WRITE_TIMEOUT" default:"3"` // в секундах
	PoolSize     int    `envconfig:"POOL_SIZE" default:"10"`
	// TTL кэшированных ответов upstream-сервисов, в минутах
	ResponseTTL int `envconfig:"RESPONSE_TTL" default:"60"`
}

// NewConnection создаёт новое подключение к Redis
func (c *Config) NewConnection() (*redis.Client, error) {
	dialTimeout := time.Duration(c.DialTimeout) * time.Second
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	readTimeout := time.Duration(c.ReadTimeout) * time.Second
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}

	writeTimeout := time.Duration(c.WriteTimeout) * time.Second
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", c.Host, c.Port),
		Username:     c.Username,
		Password:     c.Password,
		DB:           c.Database,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		PoolSize:     poolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}
