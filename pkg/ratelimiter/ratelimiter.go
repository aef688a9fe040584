package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const staleAfter = time.Hour

// Config describes a token bucket. It can be loaded with pkg/config.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"20"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"5"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	case c.RefillInterval/time.Duration(c.RefillRate) <= 0:
		return fmt.Errorf("%w: refill rate %d too high for interval %v", ErrInvalidConfig, c.RefillRate, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of a check.
type Result struct {
	Limit     int
	Remaining int // negative when denied
	ResetAt   time.Time
}

func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is zero for allowed results.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

type bucket struct {
	lim        *rate.Limiter
	lastAccess time.Time
}

// Limiter is a keyed token bucket limiter.
type Limiter struct {
	cfg   Config
	limit rate.Limit

	mu      sync.Mutex
	buckets map[string]*bucket

	stop     chan struct{}
	stopOnce sync.Once
}

// New validates cfg and starts the stale bucket sweeper.
func New(cfg Config) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{
		cfg:     cfg,
		limit:   rate.Every(cfg.RefillInterval / time.Duration(cfg.RefillRate)),
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go l.sweep(5 * time.Minute)
	return l, nil
}

func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	return l.AllowN(ctx, key, 1)
}

// AllowN takes n tokens for key. Denied calls take nothing.
func (l *Limiter) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return l.consume(key, n), nil
}

// Reset forgets the bucket of key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.buckets, key)
	l.mu.Unlock()
}

// Close stops the sweeper. Safe to call more than once.
func (l *Limiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) consume(key string, n int) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.cfg.Capacity)}
		l.buckets[key] = b
	}
	b.lastAccess = now

	allowed := b.lim.AllowN(now, n)
	tokens := b.lim.TokensAt(now)
	res := Result{
		Limit:     l.cfg.Capacity,
		Remaining: int(tokens),
		ResetAt:   now,
	}
	if missing := float64(n) - tokens; missing > 0 {
		res.ResetAt = now.Add(time.Duration(missing / float64(l.limit) * float64(time.Second)))
	}
	if !allowed {
		res.Remaining = -1
	}
	return res
}

func (l *Limiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, b := range l.buckets {
				if now.Sub(b.lastAccess) > staleAfter {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}
