package config

import "errors"

var (
	ErrRedisAddrMissing = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB   = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidPinStore  = errors.New("PIN_STORE must be memory or redis")
	ErrInvalidDuration  = errors.New("scheduler durations must be positive milliseconds")
	ErrInvalidSeed      = errors.New("AMBIENT_SEED must be an unsigned integer")
)
