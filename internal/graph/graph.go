// Package graph is an attributed, undirected graph with int node ids. It is
// the shared representation for meta-molecules, blocks and molecules.
package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Attrs are the attributes of a single node
type Attrs map[string]interface{}

// Copy returns a shallow copy of the attributes. Values are shared.
func (a Attrs) Copy() Attrs {
	c := make(Attrs, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Graph is an undirected graph whose nodes keep their insertion order
type Graph struct {
	// order that nodes were added in
	order []int

	// node attributes by id
	nodes map[int]Attrs

	// adjacency, each neighbor list in insertion order
	adj map[int][]int

	// largest node id, valid when order isn't empty
	max int
}

// New returns an empty graph
func New() *Graph {
	return &Graph{
		nodes: make(map[int]Attrs),
		adj:   make(map[int][]int),
	}
}

// AddNode adds a node with the attributes passed, or merges the
// attributes into the node if it's already present
func (g *Graph) AddNode(id int, attrs Attrs) {
	existing, ok := g.nodes[id]
	if !ok {
		existing = make(Attrs, len(attrs))
		g.nodes[id] = existing
		if len(g.order) == 0 || id > g.max {
			g.max = id
		}
		g.order = append(g.order, id)
	}
	for k, v := range attrs {
		existing[k] = v
	}
}

// AddEdge connects two nodes, adding either if missing. Self loops and
// duplicate edges are ignored.
func (g *Graph) AddEdge(a, b int) {
	if a == b || g.HasEdge(a, b) {
		return
	}
	if !g.HasNode(a) {
		g.AddNode(a, nil)
	}
	if !g.HasNode(b) {
		g.AddNode(b, nil)
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

// HasNode returns whether the node is in the graph
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge returns whether a and b are connected
func (g *Graph) HasEdge(a, b int) bool {
	for _, n := range g.adj[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Node returns the attributes of a node, nil if it's not in the graph.
// The map is live: writes to it change the graph.
func (g *Graph) Node(id int) Attrs {
	return g.nodes[id]
}

// Nodes returns the node ids in insertion order
func (g *Graph) Nodes() []int {
	return append([]int(nil), g.order...)
}

// Edges returns every edge once, as [a, b] pairs, ordered by the insertion
// order of a and then of b
func (g *Graph) Edges() [][2]int {
	pos := g.positions()
	var edges [][2]int
	for _, a := range g.order {
		for _, b := range g.adj[a] {
			if pos[a] < pos[b] {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	return edges
}

// Len is the number of nodes in the graph
func (g *Graph) Len() int {
	return len(g.order)
}

// MaxNode returns the largest node id, false if the graph is empty
func (g *Graph) MaxNode() (int, bool) {
	if len(g.order) == 0 {
		return 0, false
	}
	return g.max, true
}

// SetNodeAttr sets one attribute on every node in the graph
func (g *Graph) SetNodeAttr(key string, value interface{}) {
	for _, id := range g.order {
		g.nodes[id][key] = value
	}
}

// NodeAttr returns the value of an attribute for every node that has it
func (g *Graph) NodeAttr(key string) map[int]interface{} {
	values := make(map[int]interface{})
	for _, id := range g.order {
		if v, ok := g.nodes[id][key]; ok {
			values[id] = v
		}
	}
	return values
}

// Copy returns a copy of the graph. Attribute maps are copied, their
// values are shared.
func (g *Graph) Copy() *Graph {
	c := New()
	for _, id := range g.order {
		c.AddNode(id, g.nodes[id])
	}
	for _, e := range g.Edges() {
		c.AddEdge(e[0], e[1])
	}
	return c
}

// Subgraph returns a new graph with the nodes passed (those present in g)
// and the edges between them. Attribute maps are copied. Only the edges
// of the nodes passed are walked, not every edge of g.
func (g *Graph) Subgraph(ids []int) *Graph {
	sub := New()
	for _, id := range ids {
		if attrs, ok := g.nodes[id]; ok {
			sub.AddNode(id, attrs)
		}
	}

	pos := sub.positions()
	for _, a := range sub.order {
		for _, b := range g.adj[a] {
			if p, ok := pos[b]; ok && pos[a] < p {
				sub.AddEdge(a, b)
			}
		}
	}
	return sub
}

// DFSEdges returns the tree edges of a depth-first walk. Walks start from
// every unvisited node in insertion order and neighbors are visited in the
// order they were connected.
func (g *Graph) DFSEdges() [][2]int {
	visited := make(map[int]bool, len(g.order))
	var edges [][2]int

	var visit func(int)
	visit = func(u int) {
		visited[u] = true
		for _, v := range g.adj[u] {
			if visited[v] {
				continue
			}
			edges = append(edges, [2]int{u, v})
			visit(v)
		}
	}

	for _, id := range g.order {
		if !visited[id] {
			visit(id)
		}
	}
	return edges
}

// ConnectedComponents returns the components of the graph. Each component
// is sorted and components are ordered by their smallest node id.
func (g *Graph) ConnectedComponents() [][]int {
	ug := simple.NewUndirectedGraph()
	for _, id := range g.order {
		ug.AddNode(simple.Node(int64(id)))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(simple.Node(int64(e[0])), simple.Node(int64(e[1]))))
	}

	var components [][]int
	for _, cc := range topo.ConnectedComponents(ug) {
		ids := make([]int, 0, len(cc))
		for _, n := range cc {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)
		components = append(components, ids)
	}
	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})
	return components
}

func (g *Graph) positions() map[int]int {
	pos := make(map[int]int, len(g.order))
	for i, id := range g.order {
		pos[id] = i
	}
	return pos
}
