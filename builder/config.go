// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and bipartite partition prefixes to keep builder
// implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds:
//   - rng:  *rand.Rand source for randomness (nil → deterministic).
//   - idFn: IDFn to produce vertex identifiers from integer indices.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// Option constructors fail fast: WithIDScheme(nil) and WithRand(nil) panic.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:  source of randomness (nil means deterministic).
//   - idFn: function mapping index→vertex ID (IDFn).
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng         *rand.Rand // optional RNG; nil means deterministic behavior
	idFn        IDFn       // function to generate vertex IDs from indices
	leftPrefix  string     // left-partition label prefix for CompleteBipartite
	rightPrefix string     // right-partition label prefix for CompleteBipartite
}

// defaultLeftPrefix and defaultRightPrefix label the two sides of a
// CompleteBipartite graph when WithPartitionPrefix is not supplied.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, "L"/"R" partition prefixes.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	// Initialize defaults
	cfg := &builderConfig{
		rng:         nil,         // no RNG → deterministic ID function
		idFn:        DefaultIDFn, // decimal IDs "0","1",…
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	// Apply each option in order; later options override earlier ones
	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	return cfg
}

// WithPartitionPrefix sets the left/right vertex-label prefixes used by
// CompleteBipartite. An empty string leaves that side's prefix unchanged
// (the default "L"/"R" unless an earlier option set it).
// Complexity: O(1) time, O(1) space.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(cfg *builderConfig) {
		if left != "" {
			cfg.leftPrefix = left
		}
		if right != "" {
			cfg.rightPrefix = right
		}
	}
}

// WithIDScheme injects a custom IDFn into the builderConfig.
// Panics on nil to surface programmer error early (fail-fast).
// Complexity: O(1) time, O(1) space.
func WithIDScheme(idFn IDFn) BuilderOption {
	if idFn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.idFn = idFn
	}
}

// WithRand sets an explicit *rand.Rand source for randomness.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible randomness.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
