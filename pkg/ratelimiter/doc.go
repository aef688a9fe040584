// Package ratelimiter keeps one golang.org/x/time/rate bucket per key and
// provides an HTTP middleware on top of it.
//
//	limiter, err := ratelimiter.New(ratelimiter.Config{Capacity: 10, RefillRate: 1, RefillInterval: time.Second})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByIP(clientip.FromRequest), onLimit)).Post("/items", h)
//
// Buckets idle for longer than an hour are dropped by a background sweeper;
// call Close to stop it.
package ratelimiter
