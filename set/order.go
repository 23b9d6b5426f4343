// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package set

// Order is a bijection between a set of nodes and the positions
// 0..n-1. It supports the small query surface the ID algorithm and the
// Form factorizer need: position lookup, strict ordering, predecessor
// listing, and the minimum element of a subset.
type Order struct {
	val   map[Node]int
	nodes []Node // nodes[i] is the node at position i
}

// FromVec builds an Order from an ordered sequence of distinct nodes.
// It reports false if vec contains a duplicate.
func FromVec(vec []Node) (Order, bool) {
	val := make(map[Node]int, len(vec))
	for i, n := range vec {
		if _, dup := val[n]; dup {
			return Order{}, false
		}
		val[n] = i
	}
	nodes := make([]Node, len(vec))
	copy(nodes, vec)
	return Order{val: val, nodes: nodes}, true
}

// FromMap builds an Order from a map of node to position. It reports
// false unless the map is a bijection onto 0..len(m)-1.
func FromMap(m map[Node]int) (Order, bool) {
	n := len(m)
	nodes := make([]Node, n)
	seen := make([]bool, n)
	for node, pos := range m {
		if pos < 0 || pos >= n || seen[pos] {
			return Order{}, false
		}
		seen[pos] = true
		nodes[pos] = node
	}
	val := make(map[Node]int, n)
	for node, pos := range m {
		val[node] = pos
	}
	return Order{val: val, nodes: nodes}, true
}

// Len returns the number of nodes in the order.
func (o Order) Len() int {
	return len(o.nodes)
}

// Slice returns the nodes in order, position 0 first.
func (o Order) Slice() []Node {
	out := make([]Node, len(o.nodes))
	copy(out, o.nodes)
	return out
}

// Val returns the position of n, or false if n is not in the order.
func (o Order) Val(n Node) (int, bool) {
	p, ok := o.val[n]
	return p, ok
}

// Lt reports whether a strictly precedes b. The second return value is
// false if either node is not in the order.
func (o Order) Lt(a, b Node) (bool, bool) {
	pa, oka := o.val[a]
	pb, okb := o.val[b]
	if !oka || !okb {
		return false, false
	}
	return pa < pb, true
}

// Predecessors returns the nodes with strictly smaller position than n,
// in order. It returns nil if n is not in the order.
func (o Order) Predecessors(n Node) []Node {
	p, ok := o.val[n]
	if !ok {
		return nil
	}
	out := make([]Node, p)
	copy(out, o.nodes[:p])
	return out
}

// Min returns the member of s with the smallest position, and true. It
// returns false if s is empty or none of its elements are in the order.
func (o Order) Min(s NodeSet) (Node, bool) {
	best := -1
	var bestNode Node
	for n := range s {
		p, ok := o.val[n]
		if !ok {
			continue
		}
		if best == -1 || p < best {
			best, bestNode = p, n
		}
	}
	if best == -1 {
		return 0, false
	}
	return bestNode, true
}

// SetPredecessors returns the predecessors of min(s): if s is empty, the
// full order is returned; if no member of s is in the order, it returns
// false.
func (o Order) SetPredecessors(s NodeSet) ([]Node, bool) {
	if len(s) == 0 {
		return o.Slice(), true
	}
	n, ok := o.Min(s)
	if !ok {
		return nil, false
	}
	return o.Predecessors(n), true
}
