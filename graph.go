package injector

import (
	"fmt"
	"reflect"
	"strings"
)

// GraphNode is one type in the dependency graph. ID qualifies named types
// with their import path so that two packages sharing a name stay apart;
// Type is the short form used as a label.
type GraphNode struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Resolved bool   `json:"resolved"`
	// Missing marks a dependency target that was never registered.
	Missing bool `json:"missing,omitempty"`
}

// GraphEdge means "From depends on To". Both ends are node IDs.
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a snapshot of the registered types and their constructor edges.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Graph returns a snapshot of the registered dependency graph. Nodes are
// ordered by type name; edges follow constructor parameter order with
// repeated targets collapsed.
func (c *Container) Graph() Graph {
	types := c.registry.types()

	release, _ := c.acquire()
	resolved := make(map[reflect.Type]bool, len(c.instances))
	for t := range c.instances {
		resolved[t] = true
	}
	release()

	var g Graph
	var missing []reflect.Type
	seenMissing := make(map[reflect.Type]bool)

	for _, t := range types {
		g.Nodes = append(g.Nodes, GraphNode{ID: typeID(t), Type: t.String(), Resolved: resolved[t]})

		d, ok := c.registry.lookup(t)
		if !ok {
			continue
		}
		seen := make(map[reflect.Type]bool, len(d.Params))
		for _, p := range d.Params {
			if seen[p] {
				continue
			}
			seen[p] = true
			g.Edges = append(g.Edges, GraphEdge{From: typeID(t), To: typeID(p)})

			if !c.registry.has(p) && !seenMissing[p] {
				seenMissing[p] = true
				missing = append(missing, p)
			}
		}
	}

	for _, t := range missing {
		g.Nodes = append(g.Nodes, GraphNode{ID: typeID(t), Type: t.String(), Missing: true})
	}
	return g
}

// DOT exports Graphviz DOT text.
func (g Graph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph injector {\n")
	b.WriteString("  rankdir=LR;\n")

	aliases := make(map[string]string, len(g.Nodes))
	for i, n := range g.Nodes {
		alias := fmt.Sprintf("n%d", i)
		aliases[n.ID] = alias
		attrs := fmt.Sprintf("label=\"%s\"", escapeDOT(n.Type))
		if n.Missing {
			attrs += ", style=dashed"
		}
		b.WriteString(fmt.Sprintf("  %s [%s];\n", alias, attrs))
	}
	for _, e := range g.Edges {
		from, okFrom := aliases[e.From]
		to, okTo := aliases[e.To]
		if !okFrom || !okTo {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s -> %s;\n", from, to))
	}
	b.WriteString("}\n")
	return b.String()
}

// Mermaid exports Mermaid graph text.
func (g Graph) Mermaid() string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	aliases := make(map[string]string, len(g.Nodes))
	for i, n := range g.Nodes {
		alias := fmt.Sprintf("n%d", i)
		aliases[n.ID] = alias
		b.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", alias, escapeMermaid(n.Type)))
	}
	for _, e := range g.Edges {
		from, okFrom := aliases[e.From]
		to, okTo := aliases[e.To]
		if !okFrom || !okTo {
			continue
		}
		b.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
	}
	return b.String()
}

// typeID renders t like reflect.Type.String but with full import paths.
func typeID(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeID(t.Elem())
	case reflect.Slice:
		return "[]" + typeID(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), typeID(t.Elem()))
	case reflect.Map:
		return "map[" + typeID(t.Key()) + "]" + typeID(t.Elem())
	}
	return t.String()
}

func escapeDOT(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
