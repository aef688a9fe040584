package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid rate limiter configuration")
	ErrInvalidTokenCount = errors.New("invalid token count")
	// ErrLimitExceeded is passed to the middleware's deny handler.
	ErrLimitExceeded = errors.New("rate limit exceeded")
)
