package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/cpdmine/candidates"
	"github.com/katalvlaran/cpdmine/matching"
)

// Config holds every validated setting for one mining run. Build it with
// NewConfig and a sequence of Option values; never construct it directly,
// so a run can never start with an invalid vertex range, a missing matcher,
// or a zero support threshold.
type Config struct {
	Candidates        candidates.Config
	Matcher           matching.Matcher
	MinSupport        int
	MinSupportRelaxed int
	Parallel          bool
	Logger            *zap.Logger
}

// Option configures a Config under construction.
type Option func(*Config)

// WithActivityType sets the activity vertex type that candidate generation
// combines.
func WithActivityType(t uint64) Option {
	return func(c *Config) { c.Candidates.ActivityType = t }
}

// WithObjectTypes sets the vertex types treated as shared context objects,
// pulled into every candidate that touches them rather than combined over.
func WithObjectTypes(types ...uint64) Option {
	return func(c *Config) {
		set := make(map[uint64]struct{}, len(types))
		for _, t := range types {
			set[t] = struct{}{}
		}
		c.Candidates.ObjectTypes = set
	}
}

// WithVertexBounds sets the inclusive range of activity-vertex counts per
// candidate.
func WithVertexBounds(min, max int) Option {
	return func(c *Config) {
		c.Candidates.MinVertices = min
		c.Candidates.MaxVertices = max
	}
}

// WithMatcher selects the pairwise comparator used for frequency counting.
func WithMatcher(m matching.Matcher) Option {
	return func(c *Config) { c.Matcher = m }
}

// WithMinSupport sets the minimum exact-match frequency (support_exact) a
// pattern needs to survive into the final result set.
func WithMinSupport(n int) Option {
	return func(c *Config) { c.MinSupport = n }
}

// WithMinSupportRelaxed sets the minimum relaxed-match frequency
// (support_relaxed) a pattern needs to survive into the final result set. A
// candidate clears the filter if it meets *either* threshold: MinSupport on
// FrequencyExact or MinSupportRelaxed on FrequencyRelaxed.
func WithMinSupportRelaxed(n int) Option {
	return func(c *Config) { c.MinSupportRelaxed = n }
}

// WithParallel selects the errgroup-based patterns.Parallel strategy over
// the single-threaded patterns.Naive default.
func WithParallel(parallel bool) Option {
	return func(c *Config) { c.Parallel = parallel }
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// NewConfig applies opts over a Config seeded with safe defaults
// (MinSupport and MinSupportRelaxed both 1, a no-op Logger) and validates
// the result, mirroring the original implementation's upfront configuration
// checks before a run ever touches its input graphs.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Candidates:        candidates.Config{MinVertices: 1, MaxVertices: 1},
		MinSupport:        1,
		MinSupportRelaxed: 1,
		Logger:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Candidates.MinVertices < 1 || cfg.Candidates.MinVertices > cfg.Candidates.MaxVertices {
		return nil, ErrInvalidVertexBounds
	}
	if cfg.Matcher == nil {
		return nil, ErrNoMatcher
	}
	if cfg.MinSupport < 1 {
		return nil, ErrInvalidMinSupport
	}
	if cfg.MinSupportRelaxed < 1 {
		return nil, ErrInvalidMinSupportRelaxed
	}
	return cfg, nil
}
