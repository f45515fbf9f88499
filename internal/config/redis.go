package config

import (
	"os"
	"strconv"
)

const (
	redisAddrEnv      = "REDIS_ADDR"
	redisPasswordEnv  = "REDIS_PASSWORD"
	redisDBEnv        = "REDIS_DB"
	redisTLSEnv       = "REDIS_TLS"
	redisNamespaceEnv = "REDIS_PIN_NAMESPACE"

	defaultRedisAddr      = "localhost:6379"
	defaultRedisDB        = 0
	defaultRedisNamespace = "default"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool

	// Namespace separates pin sets of different users sharing one redis.
	Namespace string
}

func LoadRedisConfig() (*RedisConfig, error) {
	addr := os.Getenv(redisAddrEnv)
	if addr == "" {
		addr = defaultRedisAddr
	}

	password := os.Getenv(redisPasswordEnv)

	db := defaultRedisDB
	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidRedisDB
		}
		db = parsed
	}

	useTLS := os.Getenv(redisTLSEnv) == "true"

	namespace := os.Getenv(redisNamespaceEnv)
	if namespace == "" {
		namespace = defaultRedisNamespace
	}

	return &RedisConfig{
		Addr:      addr,
		Password:  password,
		DB:        db,
		TLS:       useTLS,
		Namespace: namespace,
	}, nil
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}
