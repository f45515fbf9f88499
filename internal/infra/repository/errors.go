package repository

import "errors"

var (
	ErrRedisConnection  = errors.New("redis connection error")
	ErrInvalidPinData   = errors.New("invalid pin data")
	ErrInvalidPerformer = errors.New("invalid performer id")
)
