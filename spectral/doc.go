// SPDX-License-Identifier: MIT
// Package spectral implements modularity-driven community detection over an
// undirected, unweighted graph.
//
// The core object is the implicit modularity operator B̂[g], defined over a
// subset g of the graph's vertices without ever materializing a matrix.
// Partition recursively bisects the vertex set by:
//
//  1. shifting B̂[g] by its 1-norm so power iteration converges to the
//     eigenvector of largest signed eigenvalue rather than largest magnitude,
//  2. running power iteration to the leading eigenpair,
//  3. sign-rounding the eigenvector into a ±1 split vector,
//  4. refining the split with a Kernighan-Lin-style single-move sweep,
//  5. recursing on each half until no further split improves modularity.
//
// Nothing in this package performs I/O; see package division for the binary
// adjacency/partition file formats, and package converters for gonum/graph
// interop.
package spectral
