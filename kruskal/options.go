package kruskal

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazegen/dsu"
)

// ProgressFunc is called after every opened passage with the number of candidate
// walls consumed so far and the total candidate count. A non-nil error aborts
// generation and is returned to the caller wrapped in *AbortError.
type ProgressFunc func(done, total int) error

// Option customizes a Generate call.
// Option constructors panic on nil arguments that would otherwise fail later.
type Option func(*config)

// config holds the resolved knobs of one Generate call.
type config struct {
	floored    bool
	progress   ProgressFunc
	rng        *rand.Rand
	newTracker dsu.NewTrackerFunc
	ctx        context.Context
	logger     *slog.Logger
}

// newConfig applies opts over the defaults: not floored, no progress, a freshly
// seeded RNG, the Forest tracker, no context and a discarding logger.
func newConfig(opts ...Option) config {
	cfg := config{
		newTracker: dsu.ForestTracker,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// WithFloored selects floored mode: independent 2D floors joined by one random
// vertical link per adjacent pair. It has no effect when depth is 1.
func WithFloored(floored bool) Option {
	return func(c *config) {
		c.floored = floored
	}
}

// WithProgress installs the progress callback. nil removes it.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithSeed makes shuffles and link placement reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every random draw. The generator is not safe for
// concurrent use, so r must not be shared with running generations.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("kruskal: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithTracker selects the component tracker implementation.
func WithTracker(fn dsu.NewTrackerFunc) Option {
	if fn == nil {
		panic("kruskal: WithTracker(nil)")
	}
	return func(c *config) {
		c.newTracker = fn
	}
}

// WithContext aborts generation once ctx is done, checked after every opened passage.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("kruskal: WithContext(nil)")
	}
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithLogger receives debug records per generated grid and per floor link.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("kruskal: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
