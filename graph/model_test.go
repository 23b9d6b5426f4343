// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph_test

import (
	"testing"

	"github.com/leo-ware/pqp/form"
	"github.com/leo-ware/pqp/graph"
	"github.com/leo-ware/pqp/set"
)

func abcd() graph.Model {
	const a, b, c, d = 1, 2, 3, 4
	return graph.FromElems(
		[]graph.DagEntry{
			{Node: a, Parents: []set.Node{b, c, d}},
			{Node: b, Parents: []set.Node{c, d}},
			{Node: c, Parents: []set.Node{d}},
		},
		[][2]set.Node{{a, d}},
	)
}

func TestModelSubgraphing(t *testing.T) {
	const a, b, d = 1, 2, 4
	m := abcd()
	sub := m.Subgraph(set.NewNodeSet(a, b, d))

	order, ok := sub.Order()
	if !ok {
		t.Fatalf("Order() failed on subgraph")
	}
	if !set.FromSlice(order.Slice()).Equal(set.NewNodeSet(a, b, d)) {
		t.Errorf("order nodes = %v, want {a,b,d}", order.Slice())
	}
	if got := sub.Ancestors(d); got.Len() != 0 {
		t.Errorf("Ancestors(d) = %v, want empty", got)
	}
	if got := sub.Ancestors(a); !got.Equal(set.NewNodeSet(b, d)) {
		t.Errorf("Ancestors(a) = %v, want {b,d}", got)
	}
}

func TestModelOrderSourcesFirst(t *testing.T) {
	const a, c, d = 1, 3, 4
	m := graph.FromElems(
		[]graph.DagEntry{
			{Node: a, Parents: []set.Node{2, c}},
			{Node: c, Parents: []set.Node{d}},
		},
		nil,
	)
	vec := m.OrderVec()
	if vec[len(vec)-1] != a {
		t.Errorf("OrderVec() = %v, want a (the only sink) last", vec)
	}
	if vec[0] != 2 && vec[0] != d {
		t.Errorf("OrderVec() = %v, want a root (2 or d) first", vec)
	}
}

func TestModelCondAndHide(t *testing.T) {
	m := abcd()
	m2 := m.Cond(set.NewNodeSet(1))
	if !m2.Observed().Equal(set.NewNodeSet(1)) {
		t.Errorf("Observed() after Cond({1}) = %v, want {1}", m2.Observed())
	}
	m3 := m2.Hide(set.NewNodeSet(1))
	if m3.Observed().Len() != 0 {
		t.Errorf("Observed() after Hide({1}) = %v, want empty", m3.Observed())
	}
}

func TestModelP(t *testing.T) {
	m := abcd().Cond(set.NewNodeSet(4))
	p := m.P()
	if p.Tag != form.TagP {
		t.Fatalf("P().Tag = %v, want TagP", p.Tag)
	}
	if len(p.Given) != 1 || p.Given[0] != 4 {
		t.Errorf("P().Given = %v, want [4]", p.Given)
	}
	if len(p.Vars) != 4 {
		t.Errorf("P().Vars = %v, want all 4 nodes", p.Vars)
	}
}
