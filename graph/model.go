// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph

import (
	"github.com/leo-ware/pqp/form"
	"github.com/leo-ware/pqp/set"
)

// ModelBuilder accumulates directed and bidirected edges. Every
// endpoint passed to AddDirectedEdge or AddConfoundedEdge is added to
// both sub-builders, so the two finished graphs share a node set.
type ModelBuilder struct {
	dag        *DirectedBuilder
	confounded *BidirectedBuilder
}

// NewModelBuilder returns an empty builder.
func NewModelBuilder() *ModelBuilder {
	return &ModelBuilder{
		dag:        NewDirectedBuilder(),
		confounded: NewBidirectedBuilder(),
	}
}

// AddNode registers n in both sub-graphs.
func (b *ModelBuilder) AddNode(n set.Node) {
	b.dag.AddNode(n)
	b.confounded.AddNode(n)
}

// AddDirectedEdge records that to is a causal parent of from.
func (b *ModelBuilder) AddDirectedEdge(from, to set.Node) {
	b.AddNode(from)
	b.AddNode(to)
	b.dag.AddEdge(from, to)
}

// AddConfoundedEdge records a latent confounder between a and b.
func (b *ModelBuilder) AddConfoundedEdge(a, bNode set.Node) {
	b.AddNode(a)
	b.AddNode(bNode)
	b.confounded.AddEdge(a, bNode)
}

// Build materializes an immutable Model with no conditioned variables.
func (b *ModelBuilder) Build() Model {
	return Model{
		dag:        b.dag.Build(),
		confounded: b.confounded.Build(),
		observed:   make(set.NodeSet),
	}
}

// DagEntry is one row of the dag_edges argument to FromElems: node
// paired with its list of parents.
type DagEntry struct {
	Node    set.Node
	Parents []set.Node
}

// Model is the semi-Markovian causal model the identification
// algorithm operates over: a directed causal graph and a bidirected
// confounding graph over a shared node set, plus the set of variables
// currently treated as observed (conditioned on).
type Model struct {
	dag        Directed
	confounded Bidirected
	observed   set.NodeSet
}

// FromElems is a convenience constructor: dagEdges lists each node with
// its parents, biEdges lists confounding pairs.
func FromElems(dagEdges []DagEntry, biEdges [][2]set.Node) Model {
	b := NewModelBuilder()
	for _, e := range dagEdges {
		b.AddNode(e.Node)
		for _, p := range e.Parents {
			b.AddDirectedEdge(e.Node, p)
		}
	}
	for _, e := range biEdges {
		b.AddConfoundedEdge(e[0], e[1])
	}
	return b.Build()
}

// Nodes returns the model's node set.
func (m Model) Nodes() set.NodeSet {
	return m.dag.Nodes()
}

// Dag returns the directed causal graph.
func (m Model) Dag() Directed {
	return m.dag
}

// Confounded returns the bidirected confounding graph.
func (m Model) Confounded() Bidirected {
	return m.confounded
}

// Observed returns the set of variables currently conditioned on.
func (m Model) Observed() set.NodeSet {
	return m.observed.Clone()
}

// Subgraph restricts both sub-graphs and the observed set to nodes.
func (m Model) Subgraph(nodes set.NodeSet) Model {
	return Model{
		dag:        m.dag.Subgraph(nodes),
		confounded: m.confounded.Subgraph(nodes),
		observed:   set.Intersection(m.observed, nodes),
	}
}

// Do intervenes on nodes in both sub-graphs; the observed set is
// unchanged.
func (m Model) Do(nodes set.NodeSet) Model {
	return Model{
		dag:        m.dag.Do(nodes),
		confounded: m.confounded.Do(nodes),
		observed:   m.observed.Clone(),
	}
}

// Cond adds nodes to the observed set; the graphs are untouched.
func (m Model) Cond(nodes set.NodeSet) Model {
	return Model{
		dag:        m.dag,
		confounded: m.confounded,
		observed:   set.Union(m.observed, nodes),
	}
}

// Hide removes nodes from the observed set; the graphs are untouched.
func (m Model) Hide(nodes set.NodeSet) Model {
	return Model{
		dag:        m.dag,
		confounded: m.confounded,
		observed:   set.Difference(m.observed, nodes),
	}
}

// P returns the observational distribution as a Form: the joint over
// every node, conditioned on whatever is currently observed.
func (m Model) P() form.Form {
	return form.CondProb(m.Nodes().Slice(), m.observed.Slice())
}

// OrderVec returns a topological order over the union node set: any
// node present in the confounding graph but absent from the directed
// graph is placed first, ahead of the directed topological order.
func (m Model) OrderVec() []set.Node {
	biOnly := set.Difference(m.confounded.Nodes(), m.dag.Nodes())
	order := append(biOnly.Slice(), m.dag.Order()...)
	return order
}

// Order wraps OrderVec in an Order capability object.
func (m Model) Order() (set.Order, bool) {
	return set.FromVec(m.OrderVec())
}

// Ancestors delegates to the directed graph.
func (m Model) Ancestors(n set.Node) set.NodeSet {
	return m.dag.Ancestors(n)
}

// AncestorsSet delegates to the directed graph.
func (m Model) AncestorsSet(s set.NodeSet) set.NodeSet {
	return m.dag.AncestorsSet(s)
}

// AncestorsInc delegates to the directed graph.
func (m Model) AncestorsInc(n set.Node) set.NodeSet {
	return m.dag.AncestorsInc(n)
}

// AncestorsSetInc delegates to the directed graph.
func (m Model) AncestorsSetInc(s set.NodeSet) set.NodeSet {
	return m.dag.AncestorsSetInc(s)
}
