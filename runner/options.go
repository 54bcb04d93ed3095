package runner

import (
	"golang.org/x/time/rate"
)

// Option is a functional option shared by the concurrent runners.
type Option func(*runnerConfig)

type runnerConfig struct {
	globalLock  *GlobalLock
	rateLimiter *rate.Limiter
	resultBuf   int
	extraEnv    []string
}

// WithGlobalLock injects the global execution lock into the goroutine
// runner. A nil lock (the value NewGlobalLock(false) returns) leaves workers
// free to run in parallel. The sequential and process runners ignore it:
// the former has nothing to serialize, the latter's workers each live in
// their own address space.
func WithGlobalLock(g *GlobalLock) Option {
	return func(cfg *runnerConfig) {
		cfg.globalLock = g
	}
}

// WithRateLimit caps how fast work items may start. tasksPerSecond specifies
// the sustained rate and burst the number of items that may start without
// waiting. Useful when the work function hits an external service.
// If not specified, no rate limiting is applied.
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *runnerConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithResultBuffer sets the buffer size of the goroutine runner's result
// channel. Defaults to the number of work items, which means workers never
// block on collection.
func WithResultBuffer(size int) Option {
	return func(cfg *runnerConfig) {
		if size >= 0 {
			cfg.resultBuf = size
		}
	}
}

// WithWorkerEnv appends extra environment entries ("KEY=value") to every
// spawned worker process. Only the process runner uses it.
func WithWorkerEnv(entries ...string) Option {
	return func(cfg *runnerConfig) {
		cfg.extraEnv = append(cfg.extraEnv, entries...)
	}
}

func newRunnerConfig(opts ...Option) *runnerConfig {
	cfg := &runnerConfig{resultBuf: -1}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
