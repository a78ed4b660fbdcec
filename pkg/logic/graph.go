package logic

import "fmt"

// Graph is the ordered sequence of Nodes plus an adjacency list of edges
// (spec.md §3). It is immutable once built and constructed/produced by the
// logic-language compiler, out of scope per spec.md §1 — Graph values here
// are consumed, not parsed from text.
type Graph struct {
	Nodes []Node
	// Edges[i] is the list of outgoing edges from node i.
	Edges [][]Edge

	// byID indexes nodes by their stable string identifier.
	byID map[string]int
}

// NewGraph returns an empty, buildable graph.
func NewGraph() *Graph {
	return &Graph{byID: make(map[string]int)}
}

// AddNode appends a node and returns its index.
func (g *Graph) AddNode(n Node) int {
	idx := len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	g.Edges = append(g.Edges, nil)
	if n.ID != "" {
		g.byID[n.ID] = idx
	}
	return idx
}

// AddEdge adds a directed edge from source node index to destination node
// index, guarded by req (nil means Free).
func (g *Graph) AddEdge(from, to int, req *Requirement) error {
	if from < 0 || from >= len(g.Nodes) {
		return fmt.Errorf("logic: edge source index %d out of range", from)
	}
	if to < 0 || to >= len(g.Nodes) {
		return fmt.Errorf("logic: edge destination index %d out of range", to)
	}
	if req == nil {
		req = Free()
	}
	g.Edges[from] = append(g.Edges[from], Edge{To: to, Req: req})
	return nil
}

// IndexOf returns the index of the node with the given ID, or -1.
func (g *Graph) IndexOf(id string) int {
	if idx, ok := g.byID[id]; ok {
		return idx
	}
	return -1
}

// Node returns the node at idx.
func (g *Graph) Node(idx int) *Node {
	return &g.Nodes[idx]
}

// PickupIndices returns the indices of every can_place node.
func (g *Graph) PickupIndices() []int {
	var out []int
	for i, n := range g.Nodes {
		if n.Kind == KindPickup && n.CanPlace {
			out = append(out, i)
		}
	}
	return out
}

// SpawnCandidates returns the indices of every anchor node valid as a
// randomized spawn point.
func (g *Graph) SpawnCandidates() []int {
	var out []int
	for i, n := range g.Nodes {
		if n.Kind == KindAnchor && n.CanSpawn {
			out = append(out, i)
		}
	}
	return out
}
