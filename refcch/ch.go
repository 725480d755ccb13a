package refcch

import (
	"github.com/lindqvist-dev/ctnr/comps"
	"github.com/lindqvist-dev/ctnr/structs"
	. "github.com/lindqvist-dev/ctnr/util"
)

var _ comps.IUpwardGraph = &CH{}
var _ comps.ICCHWeights = &CH{}
var _ comps.ICHQuery = &chQuery{}
var _ comps.ICHQueryFactory = &chQueryFactory{}
var _ comps.IEliminationTreeQuery = &elimTreeQuery{}

// upEdge is one arc of the CCH's upward graph: always from a lower
// rank to a strictly higher one.
type upEdge struct {
	from, to int32
	weight   int32
}

// CH is a literal customizable contraction hierarchy built by full
// witness-free shortcutting (every potential shortcut is added,
// never skipped by a witness search), which keeps construction simple
// while still producing an upward graph that preserves every true
// shortest-path distance - exactly what the CTNR index's external
// collaborator contract (spec §6) requires of it, without claiming to
// be a space-optimal CCH implementation.
type CH struct {
	n              int32
	rankToOriginal []int32
	originalToRank []int32

	edges []upEdge
	adj   [][]int32 // adjacency by rank id: indices into edges
}

// BuildCH contracts graph in the order given by rankOfOriginal
// (rankOfOriginal[original] = rank, a permutation of [0,N)), the
// lowest rank contracted first, the way a real CCH's upward graph is
// produced from a vertex ordering (spec §1, §3).
func BuildCH(graph *Graph, rankOfOriginal []int32) *CH {
	n := graph.VertexCount()

	rankToOriginal := make([]int32, n)
	for original, rank := range rankOfOriginal {
		rankToOriginal[rank] = int32(original)
	}

	// live holds the current (possibly shortcut-augmented) adjacency by
	// rank id, symmetric since the input graph is treated as undirected
	// for contraction purposes. It shrinks as vertices are contracted.
	live := make([]map[int32]int32, n)
	for r := range live {
		live[r] = make(map[int32]int32)
	}
	for original, neighbors := range graph.adj {
		ur := rankOfOriginal[original]
		for _, e := range neighbors {
			vr := rankOfOriginal[e.to]
			if cur, ok := live[ur][vr]; !ok || e.weight < cur {
				live[ur][vr] = e.weight
				live[vr][ur] = e.weight
			}
		}
	}

	upAdj := make([][]int32, n)
	var edges []upEdge

	for r := int32(0); r < n; r++ {
		higher := make([]Tuple[int32, int32], 0, len(live[r]))
		for nb, w := range live[r] {
			if nb > r {
				higher = append(higher, MakeTuple(nb, w))
			}
		}

		for i := 0; i < len(higher); i++ {
			for j := i + 1; j < len(higher); j++ {
				a, wa := higher[i].A, higher[i].B
				b, wb := higher[j].A, higher[j].B
				shortcut := structs.AddSaturating(wa, wb)
				if cur, ok := live[a][b]; !ok || shortcut < cur {
					live[a][b] = shortcut
					live[b][a] = shortcut
				}
			}
		}

		for _, pair := range higher {
			id := int32(len(edges))
			edges = append(edges, upEdge{from: r, to: pair.A, weight: pair.B})
			upAdj[r] = append(upAdj[r], id)
		}

		for nb := range live[r] {
			delete(live[nb], r)
		}
		live[r] = nil
	}

	return &CH{
		n:              n,
		rankToOriginal: rankToOriginal,
		originalToRank: append([]int32{}, rankOfOriginal...),
		edges:          edges,
		adj:            upAdj,
	}
}

func (self *CH) ElementCount() int32 {
	return self.n
}

func (self *CH) ForEachUpwardEdge(rv int32, visit func(head int32, edgeId int32)) {
	for _, id := range self.adj[rv] {
		visit(self.edges[id].to, id)
	}
}

func (self *CH) RankToOriginal(rank int32) int32 {
	return self.rankToOriginal[rank]
}

func (self *CH) OriginalToRank(original int32) int32 {
	return self.originalToRank[original]
}

// UpwardWeight and DownwardWeight are equal in this fixture since
// contraction above treats the graph as undirected; a real CCH
// customization may diverge the two, which is why the index's
// comps.ICCHWeights keeps them as separate methods.
func (self *CH) UpwardWeight(edgeId int32) int32 {
	return self.edges[edgeId].weight
}

func (self *CH) DownwardWeight(edgeId int32) int32 {
	return self.edges[edgeId].weight
}

// search runs a one-to-all Dijkstra over the upward graph only,
// starting at rank "from". Because every edge strictly increases rank,
// this is a DAG relaxation and never revisits a settled vertex.
func (self *CH) search(from int32) []int32 {
	dist := make([]int32, self.n)
	for i := range dist {
		dist[i] = structs.Infty
	}
	dist[from] = 0

	pq := NewPriorityQueue[int32, int32](16)
	pq.Enqueue(from, 0)
	settled := make([]bool, self.n)

	for pq.Len() > 0 {
		u, _ := pq.Dequeue()
		if settled[u] {
			continue
		}
		settled[u] = true
		du := dist[u]
		self.ForEachUpwardEdge(u, func(head int32, edgeId int32) {
			nd := structs.AddSaturating(du, self.edges[edgeId].weight)
			if nd < dist[head] {
				dist[head] = nd
				pq.Enqueue(head, nd)
			}
		})
	}

	return dist
}

// queryRank is the core bidirectional CH search over rank ids: a
// forward up-sweep from s and a backward up-sweep from t (valid since
// this fixture's upward/downward weights are equal) meet at whichever
// rank minimizes the sum of the two distances, per the standard CH
// point-to-point query.
func (self *CH) queryRank(s, t int32) int32 {
	if s == t {
		return 0
	}
	distFromS := self.search(s)
	distFromT := self.search(t)

	best := structs.Infty
	for r := int32(0); r < self.n; r++ {
		total := structs.AddSaturating(distFromS[r], distFromT[r])
		if total < best {
			best = total
		}
	}
	return best
}

// chQuery adapts CH.queryRank to comps.ICHQuery, which spec §4.4/C4
// addresses by original vertex id (C4 looks up TN[i], an original id).
type chQuery struct {
	ch *CH
}

func (self *chQuery) Query(src, dst int32) int32 {
	return self.ch.queryRank(self.ch.OriginalToRank(src), self.ch.OriginalToRank(dst))
}

// chQueryFactory implements comps.ICHQueryFactory. Each call returns a
// query bound to the same read-only CH; search's dist/settled buffers
// are allocated fresh per call, so concurrent workers never share
// mutable scratch (spec §5).
type chQueryFactory struct {
	ch *CH
}

func NewQueryFactory(ch *CH) comps.ICHQueryFactory {
	return &chQueryFactory{ch: ch}
}

func (self *chQueryFactory) NewQuery() comps.ICHQuery {
	return &chQuery{ch: self.ch}
}

// elimTreeQuery implements comps.IEliminationTreeQuery for local
// fallback (spec §4.6 step 2). Its Run takes rank ids directly, unlike
// chQuery.Query, matching the Query Engine's own rank-id contract.
type elimTreeQuery struct {
	ch *CH
}

func NewEliminationTreeQuery(ch *CH) comps.IEliminationTreeQuery {
	return &elimTreeQuery{ch: ch}
}

func (self *elimTreeQuery) Run(s, t int32) int32 {
	return self.ch.queryRank(s, t)
}
