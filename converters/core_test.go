package converters_test

import (
	"testing"

	"github.com/katalvlaran/modcluster/converters"
	"github.com/katalvlaran/modcluster/core"
)

func buildTriangleCoreGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%q): %v", id, err)
		}
	}
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatalf("AddEdge(%q,%q): %v", e[0], e[1], err)
		}
	}

	return g
}

func TestCoreToSimpleGraph(t *testing.T) {
	g := buildTriangleCoreGraph(t)

	sg, idToVertex, err := converters.CoreToSimpleGraph(g)
	if err != nil {
		t.Fatalf("CoreToSimpleGraph: %v", err)
	}
	if len(idToVertex) != 3 {
		t.Fatalf("len(idToVertex) = %d, want 3", len(idToVertex))
	}
	if sg.Nodes().Len() != 3 {
		t.Fatalf("Nodes().Len() = %d, want 3", sg.Nodes().Len())
	}
	if sg.Edges().Len() != 3 {
		t.Fatalf("Edges().Len() = %d, want 3", sg.Edges().Len())
	}
}

func TestSimpleGraphToCore_RoundTrip(t *testing.T) {
	g := buildTriangleCoreGraph(t)

	sg, _, err := converters.CoreToSimpleGraph(g)
	if err != nil {
		t.Fatalf("CoreToSimpleGraph: %v", err)
	}

	back, err := converters.SimpleGraphToCore(sg)
	if err != nil {
		t.Fatalf("SimpleGraphToCore: %v", err)
	}

	if back.VertexCount() != g.VertexCount() {
		t.Fatalf("VertexCount() = %d, want %d", back.VertexCount(), g.VertexCount())
	}
	if back.EdgeCount() != g.EdgeCount() {
		t.Fatalf("EdgeCount() = %d, want %d", back.EdgeCount(), g.EdgeCount())
	}
}
