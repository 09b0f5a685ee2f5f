package injector_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/centraunit/injector"
	"github.com/centraunit/injector/mock"
	legacyv1 "github.com/centraunit/injector/mock/legacy/v1"
	v1 "github.com/centraunit/injector/mock/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockID is the graph node ID of *mock.<name>.
func mockID(name string) string {
	return "*" + reflect.TypeOf((*mock.A)(nil)).Elem().PkgPath() + "." + name
}

func TestGraphSnapshot(t *testing.T) {
	c, err := injector.NewWithServices(mock.Services())
	require.NoError(t, err)

	_, err = injector.Resolve[*mock.D](c)
	require.NoError(t, err)

	g := c.Graph()
	require.Len(t, g.Nodes, 10)
	assert.Equal(t, injector.GraphNode{ID: mockID("A"), Type: "*mock.A", Resolved: true}, g.Nodes[0])
	assert.Equal(t, injector.GraphNode{ID: mockID("B"), Type: "*mock.B"}, g.Nodes[1])

	var fromH []string
	for _, e := range g.Edges {
		if e.From == mockID("H") {
			fromH = append(fromH, e.To)
		}
	}
	assert.Equal(t, []string{mockID("D"), mockID("E"), mockID("F"), mockID("G")}, fromH)
	assert.Contains(t, g.Edges, injector.GraphEdge{From: mockID("I"), To: mockID("J")})
	assert.Contains(t, g.Edges, injector.GraphEdge{From: mockID("J"), To: mockID("I")})
}

func TestGraphMissingAndDuplicateEdges(t *testing.T) {
	type pair struct{ l, r *mock.A }
	c := injector.New()
	require.NoError(t, injector.Provide[*pair](c, func(l, r *mock.A) *pair { return &pair{l: l, r: r} }))

	g := c.Graph()
	require.Len(t, g.Edges, 1)
	require.Len(t, g.Nodes, 2)
	assert.True(t, g.Nodes[1].Missing)
	assert.Equal(t, "*mock.A", g.Nodes[1].Type)
}

func TestGraphExport(t *testing.T) {
	c, err := injector.NewWithServices(mock.Services())
	require.NoError(t, err)

	g := c.Graph()

	dot := g.DOT()
	assert.Contains(t, dot, "digraph injector {")
	assert.Contains(t, dot, `n0 [label="*mock.A"];`)
	assert.Contains(t, dot, "n3 -> n0;")

	mermaid := g.Mermaid()
	assert.Contains(t, mermaid, "graph TD")
	assert.Contains(t, mermaid, `n7["*mock.H"]`)
	assert.Contains(t, mermaid, "n7 --> n3")
}

func TestGraphKeepsSameNamedTypesApart(t *testing.T) {
	c, err := injector.NewWithServices([]injector.Registration{
		injector.Service[*v1.Config](),
		injector.Service[*v1.Client](v1.NewClient),
		injector.Service[*legacyv1.Config](),
		injector.Service[*legacyv1.Client](legacyv1.NewClient),
	})
	require.NoError(t, err)

	g := c.Graph()
	require.Len(t, g.Nodes, 4)
	require.Len(t, g.Edges, 2)

	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		assert.True(t, strings.HasPrefix(n.Type, "*v1."), n.Type)
		ids[n.ID] = true
	}
	assert.Len(t, ids, 4, "every node needs its own ID")

	legacyClient := "*" + reflect.TypeOf((*legacyv1.Client)(nil)).Elem().PkgPath() + ".Client"
	legacyConfig := "*" + reflect.TypeOf((*legacyv1.Config)(nil)).Elem().PkgPath() + ".Config"
	assert.Contains(t, g.Edges, injector.GraphEdge{From: legacyClient, To: legacyConfig})

	// nodes sort by short name, then by ID: legacy/v1 before v1
	assert.Equal(t, legacyClient, g.Nodes[0].ID)

	dot := g.DOT()
	assert.Contains(t, dot, "n0 -> n2;")
	assert.Contains(t, dot, "n1 -> n3;")
	assert.NotContains(t, dot, "n0 -> n3;")

	mermaid := g.Mermaid()
	assert.Contains(t, mermaid, "n0 --> n2")
	assert.Contains(t, mermaid, "n1 --> n3")
}
