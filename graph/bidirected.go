// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph

import (
	"github.com/soniakeys/bits"

	"github.com/leo-ware/pqp/set"
)

// BidirectedBuilder accumulates confounding half-edges. AddEdge
// symmetrizes: both endpoints end up in each other's adjacency once
// Build is called.
type BidirectedBuilder struct {
	adj   map[set.Node]set.NodeSet
	nodes set.NodeSet
}

// NewBidirectedBuilder returns an empty builder.
func NewBidirectedBuilder() *BidirectedBuilder {
	return &BidirectedBuilder{
		adj:   make(map[set.Node]set.NodeSet),
		nodes: make(set.NodeSet),
	}
}

// AddNode registers n with no confounding siblings, if not already
// present.
func (b *BidirectedBuilder) AddNode(n set.Node) {
	b.nodes.Add(n)
	if _, ok := b.adj[n]; !ok {
		b.adj[n] = make(set.NodeSet)
	}
}

// AddEdge records a confounding edge between a and b.
func (b *BidirectedBuilder) AddEdge(a, bNode set.Node) {
	b.AddNode(a)
	b.AddNode(bNode)
	b.adj[a].Add(bNode)
	b.adj[bNode].Add(a)
}

// FromBidirectedEdges builds a Bidirected directly from a list of confounding
// pairs.
func FromBidirectedEdges(edges [][2]set.Node) Bidirected {
	b := NewBidirectedBuilder()
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	return b.Build()
}

// FromBidirectedEdgesNodes is like FromBidirectedEdges but also seeds
// the node set with an explicit list, so unconfounded nodes survive.
func FromBidirectedEdgesNodes(edges [][2]set.Node, nodes []set.Node) Bidirected {
	b := NewBidirectedBuilder()
	for _, n := range nodes {
		b.AddNode(n)
	}
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	return b.Build()
}

// Build materializes an immutable Bidirected graph.
func (b *BidirectedBuilder) Build() Bidirected {
	return Bidirected{adj: b.adj, nodes: b.nodes.Clone()}
}

// Bidirected is an immutable confounding graph: symmetric adjacency
// over a node mask. Subgraph views share the adjacency by reference and
// clone the node mask; Do views carry a rebuilt adjacency.
type Bidirected struct {
	adj   map[set.Node]set.NodeSet
	nodes set.NodeSet
}

// Nodes returns the current node set.
func (g Bidirected) Nodes() set.NodeSet {
	return g.nodes.Clone()
}

func (g Bidirected) bitmapSize() int {
	max := -1
	for n := range g.nodes {
		if int(n) > max {
			max = int(n)
		}
	}
	return max + 1
}

// GetComponent returns the maximal set containing n reachable via
// confounding edges, restricted to the current node set. Every queue
// pop is filtered against the live node set, so a node subgraphed or
// do'd away cannot leak back into a component even if the shared
// adjacency map still records it.
func (g Bidirected) GetComponent(n set.Node) set.NodeSet {
	acc := make(set.NodeSet)
	if !g.nodes.Contains(n) {
		return acc
	}

	visited := bits.New(g.bitmapSize())
	queue := []set.Node{n}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if !g.nodes.Contains(cur) || visited.Bit(int(cur)) == 1 {
			continue
		}
		visited.SetBit(int(cur), 1)
		acc.Add(cur)
		for sib := range g.adj[cur] {
			if g.nodes.Contains(sib) && visited.Bit(int(sib)) == 0 {
				queue = append(queue, sib)
			}
		}
	}
	return acc
}

// CComponents partitions the current node set into maximal
// confounding components. Result ordering is unspecified.
func (g Bidirected) CComponents() []set.NodeSet {
	unvisited := g.nodes.Clone()
	var components []set.NodeSet
	for n := range g.nodes {
		if unvisited.Contains(n) {
			c := g.GetComponent(n)
			for sib := range c {
				unvisited.Remove(sib)
			}
			components = append(components, c)
		}
	}
	return components
}

// Subgraph returns a view restricted to nodes; the adjacency store is
// shared by reference.
func (g Bidirected) Subgraph(nodes set.NodeSet) Bidirected {
	return Bidirected{adj: g.adj, nodes: nodes.Clone()}
}

// Do returns a view with every confounding edge incident to a node in
// nodes removed. The node set is unchanged.
func (g Bidirected) Do(nodes set.NodeSet) Bidirected {
	newAdj := make(map[set.Node]set.NodeSet, len(g.adj))
	for n, sibs := range g.adj {
		if nodes.Contains(n) {
			newAdj[n] = make(set.NodeSet)
			continue
		}
		filtered := make(set.NodeSet, sibs.Len())
		for s := range sibs {
			if !nodes.Contains(s) {
				filtered.Add(s)
			}
		}
		newAdj[n] = filtered
	}
	return Bidirected{adj: newAdj, nodes: g.nodes.Clone()}
}

// Equal reports whether g and h have the same node set and yield the
// same component when seeded at any shared member.
func (g Bidirected) Equal(h Bidirected) bool {
	if !g.nodes.Equal(h.nodes) {
		return false
	}
	for n := range g.nodes {
		if !g.GetComponent(n).Equal(h.GetComponent(n)) {
			return false
		}
	}
	return true
}
