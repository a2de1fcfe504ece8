// Package modcluster partitions an undirected, unweighted graph into
// disjoint communities by recursively maximizing Newman's modularity.
//
// What modcluster is:
//
//	A spectral community-detection engine: an implicit modularity operator,
//	a power-iteration eigensolver over that operator, a sign-based split,
//	and a Kernighan-Lin-style single-move refinement, orchestrated as a
//	recursive divide-and-queue procedure over submatrices named by index
//	sets rather than materialized as dense matrices.
//
// Under the hood, everything is organized under these subpackages:
//
//	spectral/  — the modularity operator, eigen engine, divider, refiner,
//	             and recursive partitioner (the core of this module)
//	division/  — binary codecs for the adjacency input and division output
//	core/      — general-purpose in-memory Graph/Vertex/Edge primitives,
//	             used to assemble test fixtures and CLI-generated graphs
//	builder/   — deterministic topology constructors (cycles, cliques,
//	             bipartite graphs, random graphs, ...) for fixtures
//	bfs/       — breadth-first traversal, used for connectivity diagnostics
//	matrix/    — a small dense matrix type plus an exact Jacobi
//	             eigendecomposition, used only to cross-check the spectral
//	             engine's power iteration in tests
//	converters/ — adjacency <-> gonum.org/v1/gonum/graph interop
//
// cmd/modcluster is the command-line front end: it reads an adjacency file,
// runs the partitioner, and writes a division file (see division/ for the
// exact binary layouts).
package modcluster
