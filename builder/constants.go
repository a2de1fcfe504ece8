// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults across all topology constructors.
package builder

// CenterVertexID is the identifier for the hub vertex in Wheel, ensuring
// tests and debugging remain consistent.
const CenterVertexID = "Center"
