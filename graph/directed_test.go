// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leo-ware/pqp/graph"
	"github.com/leo-ware/pqp/set"
)

func chain() graph.Directed {
	// a -> b -> c -> d, recorded as b's parent is a, etc.
	b := graph.NewDirectedBuilder()
	b.AddEdge(2, 1) // b's parent is a (1=a, 2=b, 3=c, 4=d)
	b.AddEdge(3, 2)
	b.AddEdge(4, 3)
	return b.Build()
}

func TestAncestors(t *testing.T) {
	g := chain()
	got := g.Ancestors(4)
	want := set.NewNodeSet(1, 2, 3)
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Ancestors(4) mismatch (-got +want):\n%s", diff)
	}
	if got := g.Ancestors(1); got.Len() != 0 {
		t.Errorf("Ancestors(1) = %v, want empty", got)
	}
}

func TestOrderSourcesFirst(t *testing.T) {
	g := chain()
	order := g.Order()
	pos := make(map[set.Node]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	if pos[1] >= pos[2] || pos[2] >= pos[3] || pos[3] >= pos[4] {
		t.Errorf("Order() = %v, want roots first and sinks last", order)
	}
}

func TestRootSet(t *testing.T) {
	g := chain()
	got := g.RootSet()
	want := set.NewNodeSet(1)
	if !got.Equal(want) {
		t.Errorf("RootSet() = %v, want %v", got, want)
	}
}

func TestDoRemovesIncomingEdges(t *testing.T) {
	g := chain()
	g2 := g.Do(set.NewNodeSet(3))
	if got := g2.Parents(3); got.Len() != 0 {
		t.Errorf("after Do({3}), Parents(3) = %v, want empty", got)
	}
	if got := g2.Parents(2); !got.Equal(set.NewNodeSet(1)) {
		t.Errorf("after Do({3}), Parents(2) = %v, want {1}", got)
	}
}

func TestSubgraphRestrictsAncestors(t *testing.T) {
	g := chain()
	// dropping node 3 severs the only link between {1,2} and 4.
	sub := g.Subgraph(set.NewNodeSet(1, 2, 4))
	if got := sub.Ancestors(4); got.Len() != 0 {
		t.Errorf("Ancestors(4) on subgraph = %v, want empty", got)
	}
	// keeping 3 preserves the full chain.
	sub2 := g.Subgraph(set.NewNodeSet(1, 2, 3, 4))
	want := set.NewNodeSet(1, 2, 3)
	if got := sub2.Ancestors(4); !got.Equal(want) {
		t.Errorf("Ancestors(4) on full subgraph = %v, want %v", got, want)
	}
}
