// Package refcch is scaffolding for tests and for cmd/ctnrtool:
// literal, deliberately simple implementations of the external
// collaborator interfaces in comps (all but IHierarchy, which sepdecomp
// provides), plus a reference Dijkstra for property P1. The CTNR index
// itself never imports this package; only _test.go files and
// cmd/ctnrtool do.
package refcch

import (
	"github.com/lindqvist-dev/ctnr/structs"
	. "github.com/lindqvist-dev/ctnr/util"
)

// edge is one directed arc of the raw input graph, grounded on the
// teacher's structs.Edge (structs/items.go), trimmed to what a
// reference Dijkstra needs.
type edge struct {
	to     int32
	weight int32
}

// Graph is the plain directed weighted graph the index's external
// collaborators (separator decomposition, CCH) are built over in
// tests. It is not the CTNR index's concern (spec §1: raw graph
// container is out of scope) - it exists only so refcch has something
// concrete to build a CCH and a reference Dijkstra on top of.
type Graph struct {
	n   int32
	adj [][]edge
}

func NewGraph(n int32) *Graph {
	return &Graph{n: n, adj: make([][]edge, n)}
}

func (self *Graph) VertexCount() int32 {
	return self.n
}

// AddEdge adds a directed arc u -> v. Call it twice (swapping
// arguments) to model an undirected road segment.
func (self *Graph) AddEdge(u, v, weight int32) {
	self.adj[u] = append(self.adj[u], edge{to: v, weight: weight})
}

// AddUndirected adds both directions of a road segment, the common
// case for the literal test scenarios (S1, S3).
func (self *Graph) AddUndirected(u, v, weight int32) {
	self.AddEdge(u, v, weight)
	self.AddEdge(v, u, weight)
}

// Dijkstra runs an exact single-source shortest path search from src
// over graph, used by tests as the ground truth for P1/P6/S6.
func Dijkstra(graph *Graph, src, dst int32) int32 {
	if src == dst {
		return 0
	}
	dist := NewFlags[int32](graph.n, structs.Infty)
	*dist.Get(src) = 0

	pq := NewPriorityQueue[int32, int32](16)
	pq.Enqueue(src, 0)
	visited := make([]bool, graph.n)

	for pq.Len() > 0 {
		u, _ := pq.Dequeue()
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}
		du := *dist.Get(u)
		for _, e := range graph.adj[u] {
			nd := structs.AddSaturating(du, e.weight)
			if nd < *dist.Get(e.to) {
				*dist.Get(e.to) = nd
				pq.Enqueue(e.to, nd)
			}
		}
	}

	return *dist.Get(dst)
}
