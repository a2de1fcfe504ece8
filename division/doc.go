// SPDX-License-Identifier: MIT
// Package division implements the little-endian binary codecs for the
// adjacency input file and the partition-result output file (spec.md §6):
// ReadAdjacency decodes the former into a *spectral.Adjacency, and Writer /
// WriteDivision encode a partition's groups into the latter, including the
// "seek past num_groups, write groups, seek back and overwrite" protocol.
package division
