// SPDX-License-Identifier: MIT
package spectral

import "math/rand"

// Sink receives finalized groups as the partitioner emits them, in
// depth-first emission order. It lets a caller stream partition output
// (e.g. to a division.Writer) without buffering the whole result in
// memory. See division.Writer, which implements Sink.
type Sink interface {
	WriteGroup(vertices []int) error
}

// PartitionOption configures Partition. Functional options, matching the
// WithX(...) convention used throughout core and builder.
type PartitionOption func(*partitionConfig)

type partitionConfig struct {
	rng        *rand.Rand
	epsilon    float64
	sink       Sink
	onDecision func(size int, divisible bool)
}

// WithRand sets the random source used to draw power-iteration start
// vectors. Without this option Partition seeds a deterministic default.
func WithRand(rng *rand.Rand) PartitionOption {
	return func(cfg *partitionConfig) { cfg.rng = rng }
}

// WithEpsilon overrides DefaultEpsilon for every divisibility and
// convergence test the run performs.
func WithEpsilon(eps float64) PartitionOption {
	return func(cfg *partitionConfig) { cfg.epsilon = eps }
}

// WithSink streams finalized groups to sink instead of accumulating them
// into Partition's return slice, which is then nil on success.
func WithSink(sink Sink) PartitionOption {
	return func(cfg *partitionConfig) { cfg.sink = sink }
}

// WithDecisionLogger calls fn after every Divider.Divide call with the
// submatrix size tested and whether it was found divisible. Intended for
// ambient CLI verbosity (see cmd/modcluster's -v flag); Partition itself
// never logs.
func WithDecisionLogger(fn func(size int, divisible bool)) PartitionOption {
	return func(cfg *partitionConfig) { cfg.onDecision = fn }
}

// Partition recursively bisects adj's vertex set by repeated calls to
// Divider.Divide, following the LIFO work-stack algorithm of spec.md §4.7.
//
// The multiset of vertices across every emitted group always equals
// {0, ..., adj.N()-1}: every Submatrix popped from the stack either has
// size <= 1 (emitted directly), is indivisible (emitted whole), or is
// split into two views whose g slices partition the parent's g without
// reordering, each either emitted (size <= 1, or the sibling of a
// degenerate empty split) or pushed back for further division.
func Partition(adj *Adjacency, opts ...PartitionOption) ([][]int, error) {
	cfg := &partitionConfig{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	divider := &Divider{Rng: cfg.rng, Epsilon: cfg.epsilon}

	var groups [][]int
	emit := func(g []int) error {
		if cfg.sink != nil {
			return cfg.sink.WriteGroup(g)
		}
		groups = append(groups, g)

		return nil
	}

	if adj.N() == 0 {
		return groups, nil
	}

	// With no edges every B̂[g] is the zero matrix and no split can raise
	// modularity: each vertex is emitted as its own singleton group.
	if adj.M() == 0 {
		for i := 0; i < adj.N(); i++ {
			if err := emit([]int{i}); err != nil {
				return nil, err
			}
		}

		return groups, nil
	}

	stack := []*Submatrix{newRootSubmatrix(adj)}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.size() <= 1 {
			if err := emit(s.g); err != nil {
				return nil, err
			}
			continue
		}

		sVec, divisible, err := divider.Divide(s)
		if err != nil {
			return nil, err
		}
		if cfg.onDecision != nil {
			cfg.onDecision(s.size(), divisible)
		}
		if !divisible {
			if err := emit(s.g); err != nil {
				return nil, err
			}
			continue
		}

		g1, g2 := s.split(sVec)

		// Degenerate split: one side is empty. Per spec.md §4.7/§9, write
		// the other side whole (it may not be a singleton) and do not
		// process the empty side further.
		switch {
		case g1.size() == 0:
			if err := emit(g2.g); err != nil {
				return nil, err
			}
		case g2.size() == 0:
			if err := emit(g1.g); err != nil {
				return nil, err
			}
		default:
			for _, child := range [2]*Submatrix{g1, g2} {
				if child.size() <= 1 {
					if err := emit(child.g); err != nil {
						return nil, err
					}
				} else {
					stack = append(stack, child)
				}
			}
		}
	}

	return groups, nil
}
