// SPDX-License-Identifier: MIT
// Package converters adapts between this module's own graph types
// (spectral.Adjacency, core.Graph) and gonum.org/v1/gonum/graph's
// interfaces, via gonum.org/v1/gonum/graph/simple.UndirectedGraph.
//
// This lets a caller hand modcluster a graph assembled with gonum's own
// graph algorithms, or feed a partition's groups back into one, without
// spectral, division or core ever importing gonum's graph packages.
package converters
