package graph

import (
	"reflect"
	"testing"
)

// path makes a linear graph 0-1-...-(n-1)
func path(n int) *Graph {
	g := New()
	for i := 0; i < n; i++ {
		g.AddNode(i, Attrs{"resid": i + 1})
	}
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
	}
	return g
}

func TestGraph_AddEdge(t *testing.T) {
	g := New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(3, 3)

	if !g.HasNode(1) || !g.HasNode(2) {
		t.Errorf("AddEdge() did not add missing nodes")
	}
	if g.HasNode(3) {
		t.Errorf("AddEdge() added a node for a self loop")
	}
	if got := g.Edges(); !reflect.DeepEqual(got, [][2]int{{1, 2}}) {
		t.Errorf("Edges() = %v, want [[1 2]]", got)
	}
}

func TestGraph_AddNode(t *testing.T) {
	g := New()
	g.AddNode(4, Attrs{"a": 1})
	g.AddNode(4, Attrs{"b": 2})

	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
	if got := g.Node(4); !reflect.DeepEqual(got, Attrs{"a": 1, "b": 2}) {
		t.Errorf("Node() = %v, want merged attributes", got)
	}
}

func TestGraph_DFSEdges(t *testing.T) {
	star := New()
	star.AddEdge(0, 1)
	star.AddEdge(0, 2)
	star.AddEdge(1, 2)
	star.AddNode(7, nil)
	star.AddEdge(8, 9)

	tests := []struct {
		name string
		g    *Graph
		want [][2]int
	}{
		{
			"linear",
			path(4),
			[][2]int{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			"cycle and disconnected pieces",
			star,
			[][2]int{{0, 1}, {1, 2}, {8, 9}},
		},
		{
			"empty",
			New(),
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.DFSEdges(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DFSEdges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGraph_ConnectedComponents(t *testing.T) {
	g := New()
	g.AddNode(5, nil)
	g.AddEdge(3, 4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	want := [][]int{{0, 1, 2}, {3, 4}, {5}}
	if got := g.ConnectedComponents(); !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectedComponents() = %v, want %v", got, want)
	}
}

func TestGraph_Subgraph(t *testing.T) {
	g := path(5)

	sub := g.Subgraph([]int{1, 2, 4, 12})
	if got := sub.Nodes(); !reflect.DeepEqual(got, []int{1, 2, 4}) {
		t.Errorf("Subgraph().Nodes() = %v, want [1 2 4]", got)
	}
	if got := sub.Edges(); !reflect.DeepEqual(got, [][2]int{{1, 2}}) {
		t.Errorf("Subgraph().Edges() = %v, want [[1 2]]", got)
	}

	// attribute maps are not shared with the parent
	sub.Node(1)["extra"] = true
	if _, ok := g.Node(1)["extra"]; ok {
		t.Errorf("Subgraph() shares attribute maps with its parent")
	}
}

func TestGraph_Subgraph_largeGraph(t *testing.T) {
	g := path(20000)
	g.AddEdge(10001, 10003)

	sub := g.Subgraph([]int{10003, 10001, 10002})
	if got := sub.Nodes(); !reflect.DeepEqual(got, []int{10003, 10001, 10002}) {
		t.Errorf("Subgraph().Nodes() = %v", got)
	}
	want := [][2]int{{10003, 10002}, {10001, 10002}, {10003, 10001}}
	if got := sub.Edges(); len(got) != 3 {
		t.Errorf("Subgraph().Edges() = %v, want %v", got, want)
	}
	for _, e := range want {
		if !sub.HasEdge(e[0], e[1]) || !sub.HasEdge(e[1], e[0]) {
			t.Errorf("Subgraph() is missing edge %v", e)
		}
	}
	if sub.HasNode(10000) || sub.HasNode(10004) {
		t.Errorf("Subgraph() has neighbors that weren't asked for")
	}
}

func TestGraph_Copy(t *testing.T) {
	g := path(3)
	c := g.Copy()
	c.AddEdge(2, 3)
	c.Node(0)["resid"] = 10

	if g.Len() != 3 || g.HasEdge(2, 3) {
		t.Errorf("Copy() shares structure with the original")
	}
	if g.Node(0)["resid"] != 1 {
		t.Errorf("Copy() shares attribute maps with the original")
	}
}

func TestGraph_MaxNode(t *testing.T) {
	if _, ok := New().MaxNode(); ok {
		t.Errorf("MaxNode() on empty graph returned ok")
	}

	g := New()
	g.AddNode(3, nil)
	g.AddNode(9, nil)
	g.AddNode(1, nil)
	if got, _ := g.MaxNode(); got != 9 {
		t.Errorf("MaxNode() = %d, want 9", got)
	}

	// merging attributes into a node doesn't move the max
	g.AddNode(3, Attrs{"resid": 1})
	if got, _ := g.Copy().MaxNode(); got != 9 {
		t.Errorf("Copy().MaxNode() = %d, want 9", got)
	}
	if got, _ := g.Subgraph([]int{1, 3}).MaxNode(); got != 3 {
		t.Errorf("Subgraph().MaxNode() = %d, want 3", got)
	}

	// negative ids
	neg := New()
	neg.AddNode(-4, nil)
	neg.AddNode(-2, nil)
	if got, _ := neg.MaxNode(); got != -2 {
		t.Errorf("MaxNode() = %d, want -2", got)
	}
}

func TestGraph_NodeAttr(t *testing.T) {
	g := path(3)
	g.Node(1)["from_itp"] = "PROT"
	g.SetNodeAttr("exclude", 3)

	if got := g.NodeAttr("from_itp"); !reflect.DeepEqual(got, map[int]interface{}{1: "PROT"}) {
		t.Errorf("NodeAttr() = %v", got)
	}
	for _, id := range g.Nodes() {
		if g.Node(id)["exclude"] != 3 {
			t.Errorf("SetNodeAttr() missed node %d", id)
		}
	}
}
