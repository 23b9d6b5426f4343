// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph

import (
	"github.com/soniakeys/bits"

	"github.com/leo-ware/pqp/set"
)

// DirectedBuilder accumulates the edges of a causal (parent-pointing)
// digraph. The zero value is not usable; use NewDirectedBuilder.
type DirectedBuilder struct {
	parents map[set.Node]set.NodeSet
	nodes   set.NodeSet
}

// NewDirectedBuilder returns an empty builder.
func NewDirectedBuilder() *DirectedBuilder {
	return &DirectedBuilder{
		parents: make(map[set.Node]set.NodeSet),
		nodes:   make(set.NodeSet),
	}
}

// AddNode registers n, with no parents, if not already present.
func (b *DirectedBuilder) AddNode(n set.Node) {
	b.nodes.Add(n)
	if _, ok := b.parents[n]; !ok {
		b.parents[n] = make(set.NodeSet)
	}
}

// AddEdge records that to is a parent of from.
func (b *DirectedBuilder) AddEdge(from, to set.Node) {
	b.AddNode(from)
	b.AddNode(to)
	b.parents[from].Add(to)
}

// FromEdges builds a Directed directly from a list of (from, to) pairs,
// where each pair records to as a parent of from.
func FromEdges(edges [][2]set.Node) Directed {
	b := NewDirectedBuilder()
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	return b.Build()
}

// FromEdgesNodes is like FromEdges but also seeds the node set with an
// explicit list, so isolated nodes with no edges survive.
func FromEdgesNodes(edges [][2]set.Node, nodes []set.Node) Directed {
	b := NewDirectedBuilder()
	for _, n := range nodes {
		b.AddNode(n)
	}
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	return b.Build()
}

// Build materializes an immutable Directed graph. The edge store is
// shared by reference with Subgraph views; Do builds a new edge map.
func (b *DirectedBuilder) Build() Directed {
	return Directed{parents: b.parents, nodes: b.nodes.Clone()}
}

// Directed is an immutable directed graph keyed by parent lookup: the
// edge store maps each node to the set of nodes recorded as its
// parents. Subgraph views share the edge store and differ only in their
// node mask; Do views carry a rebuilt edge map.
type Directed struct {
	parents map[set.Node]set.NodeSet
	nodes   set.NodeSet
}

// Nodes returns the current node set.
func (g Directed) Nodes() set.NodeSet {
	return g.nodes.Clone()
}

// Parents returns the parents of n recorded in the edge store,
// restricted to the current node set.
func (g Directed) Parents(n set.Node) set.NodeSet {
	out := make(set.NodeSet)
	for p := range g.parents[n] {
		if g.nodes.Contains(p) {
			out.Add(p)
		}
	}
	return out
}

// Children returns the nodes that record n as a parent, restricted to
// the current node set.
func (g Directed) Children(n set.Node) set.NodeSet {
	out := make(set.NodeSet)
	for k := range g.nodes {
		if g.parents[k].Contains(n) {
			out.Add(k)
		}
	}
	return out
}

// bitmapSize returns a bitmap width covering every node id that could
// possibly appear during a traversal from s: node ids are small dense
// non-negative integers assigned sequentially by the name registry, so
// the live node set alone bounds the width.
func (g Directed) bitmapSize() int {
	max := -1
	for n := range g.nodes {
		if int(n) > max {
			max = int(n)
		}
	}
	return max + 1
}

// AncestorsSet returns the transitive closure of Parents seeded at s,
// restricted to the current node set, never including the members of s
// themselves.
//
// The traversal is a worklist that marks each node visited once, so it
// terminates on any input: a cycle is not detected and the call returns
// normally. The loop is bounded by len(nodes)+1 iterations and panics if
// the bound is exceeded, which only happens when s holds nodes outside
// the current node set.
func (g Directed) AncestorsSet(s set.NodeSet) set.NodeSet {
	acc := s.Clone()
	visited := bits.New(g.bitmapSize())
	for n := range s {
		visited.SetBit(int(n), 1)
	}

	queue := s.Slice()
	iterCap := g.nodes.Len() + 1
	for i := 0; i < iterCap; i++ {
		if len(queue) == 0 {
			for n := range s {
				acc.Remove(n)
			}
			return acc
		}
		n := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for p := range g.Parents(n) {
			if visited.Bit(int(p)) == 0 {
				visited.SetBit(int(p), 1)
				acc.Add(p)
				queue = append(queue, p)
			}
		}
	}

	panic("graph: cycle detected computing ancestors (iteration cap exceeded)")
}

// Ancestors is AncestorsSet of the singleton {n}.
func (g Directed) Ancestors(n set.Node) set.NodeSet {
	return g.AncestorsSet(set.NewNodeSet(n))
}

// AncestorsSetInc is AncestorsSet including the members of s.
func (g Directed) AncestorsSetInc(s set.NodeSet) set.NodeSet {
	return set.Union(g.AncestorsSet(s), s)
}

// AncestorsInc is Ancestors including n itself.
func (g Directed) AncestorsInc(n set.Node) set.NodeSet {
	return g.AncestorsSetInc(set.NewNodeSet(n))
}

// CountParents maps every node in the current node set to the number
// of its parents under that same node set.
func (g Directed) CountParents() map[set.Node]int {
	counts := make(map[set.Node]int, g.nodes.Len())
	for n := range g.nodes {
		counts[n] = g.Parents(n).Len()
	}
	return counts
}

// RootSet returns the nodes with zero parents under the current node
// set.
func (g Directed) RootSet() set.NodeSet {
	out := make(set.NodeSet)
	for n, c := range g.CountParents() {
		if c == 0 {
			out.Add(n)
		}
	}
	return out
}

// Order returns a topological order: sources (zero-parent nodes)
// first, sinks last. Kahn's algorithm peels zero-parent nodes off the
// queue; popping a node decrements the remaining parent count of each
// of its children, and a child joins the queue once its count reaches
// zero.
func (g Directed) Order() []set.Node {
	remaining := g.CountParents()
	var order []set.Node
	var queue []set.Node
	for n, c := range remaining {
		if c == 0 {
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		n := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		order = append(order, n)
		for ch := range g.Children(n) {
			remaining[ch]--
			if remaining[ch] == 0 {
				queue = append(queue, ch)
			}
		}
	}

	return order
}

// Subgraph returns a view restricted to nodes; the edge store is
// shared by reference.
func (g Directed) Subgraph(nodes set.NodeSet) Directed {
	return Directed{parents: g.parents, nodes: nodes.Clone()}
}

// Do returns a view with every parent-edge recorded under a node in
// nodes removed, simulating an intervention that cuts incoming causal
// edges. The node set is unchanged.
func (g Directed) Do(nodes set.NodeSet) Directed {
	newParents := make(map[set.Node]set.NodeSet, len(g.parents))
	for from, parents := range g.parents {
		if nodes.Contains(from) {
			newParents[from] = make(set.NodeSet)
		} else {
			newParents[from] = parents
		}
	}
	return Directed{parents: newParents, nodes: g.nodes.Clone()}
}
