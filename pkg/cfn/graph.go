package cfn

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// Graph is the resource dependency graph of a template. Edges point from a
// resource to the resources that depend on it.
type Graph struct {
	g graph.Graph[string, string]
}

// Graph builds the dependency graph from explicit DependsOn entries and
// implicit Ref, GetAtt and Sub references between resources. A dependency
// cycle is reported as a *CycleError.
func (t *Template) Graph() (*Graph, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	for _, id := range sortedMapKeys(t.Resources) {
		typeName := ""
		if r := t.Resources[id]; r != nil {
			typeName = r.Type
		}
		if err := g.AddVertex(id, graph.VertexAttribute("label", fmt.Sprintf(`%s\n%s`, id, typeName))); err != nil {
			return nil, fmt.Errorf("failed to add %s to graph: %w", id, err)
		}
	}

	for _, ref := range t.references() {
		if !ref.dependency {
			continue
		}
		if _, ok := t.Resources[ref.target]; !ok {
			continue
		}
		if ref.target == ref.from {
			return nil, &CycleError{From: ref.from, To: ref.target}
		}

		err := g.AddEdge(ref.target, ref.from)
		switch {
		case err == nil, errors.Is(err, graph.ErrEdgeAlreadyExists):
		case errors.Is(err, graph.ErrEdgeCreatesCycle):
			return nil, &CycleError{From: ref.from, To: ref.target}
		default:
			return nil, fmt.Errorf("failed to add dependency %s -> %s: %w", ref.from, ref.target, err)
		}
	}

	return &Graph{g: g}, nil
}

// DeployOrder returns the logical ids so that every resource comes after its
// dependencies; ties are broken alphabetically.
func (g *Graph) DeployOrder() ([]string, error) {
	order, err := graph.StableTopologicalSort(g.g, func(a, b string) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("failed to sort resources: %w", err)
	}
	return order, nil
}

// Dependencies returns the resources id depends on directly.
func (g *Graph) Dependencies(id string) ([]string, error) {
	predecessors, err := g.g.PredecessorMap()
	if err != nil {
		return nil, err
	}
	return sortedMapKeys(predecessors[id]), nil
}

// Dependents returns the resources that depend on id directly.
func (g *Graph) Dependents(id string) ([]string, error) {
	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	return sortedMapKeys(adjacency[id]), nil
}

// Edges returns every dependency as a [dependency, dependent] pair, sorted.
func (g *Graph) Edges() ([][2]string, error) {
	edges, err := g.g.Edges()
	if err != nil {
		return nil, err
	}
	out := make([][2]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, [2]string{e.Source, e.Target})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out, nil
}

// DOT writes the graph in Graphviz DOT format.
func (g *Graph) DOT(w io.Writer) error {
	return draw.DOT(g.g, w)
}
