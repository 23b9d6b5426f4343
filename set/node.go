// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package set

import "sort"

// Node is a "node int". It is a node number, used extensively as a map
// key and set element. Node numbers also account for a significant
// fraction of the memory required to represent a graph.
type Node int32

// NodeList is a sortable slice of Node.
type NodeList []Node

func (l NodeList) Len() int           { return len(l) }
func (l NodeList) Less(i, j int) bool { return l[i] < l[j] }
func (l NodeList) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

// NodeSet is an unordered set of Node values.
type NodeSet map[Node]struct{}

// NewNodeSet builds a NodeSet from the given elements.
func NewNodeSet(ns ...Node) NodeSet {
	s := make(NodeSet, len(ns))
	for _, n := range ns {
		s[n] = struct{}{}
	}
	return s
}

// FromSlice builds a NodeSet from a slice of Node.
func FromSlice(ns []Node) NodeSet {
	return NewNodeSet(ns...)
}

// Contains reports whether n is a member of s.
func (s NodeSet) Contains(n Node) bool {
	_, ok := s[n]
	return ok
}

// Add inserts n into s, in place.
func (s NodeSet) Add(n Node) {
	s[n] = struct{}{}
}

// Remove deletes n from s, in place.
func (s NodeSet) Remove(n Node) {
	delete(s, n)
}

// Len returns the number of elements in s.
func (s NodeSet) Len() int {
	return len(s)
}

// Clone returns a shallow copy of s.
func (s NodeSet) Clone() NodeSet {
	c := make(NodeSet, len(s))
	for n := range s {
		c[n] = struct{}{}
	}
	return c
}

// Slice returns the elements of s as a sorted slice.
func (s NodeSet) Slice() []Node {
	l := make(NodeList, 0, len(s))
	for n := range s {
		l = append(l, n)
	}
	sort.Sort(l)
	return []Node(l)
}

// Equal reports whether s and t contain the same elements.
func (s NodeSet) Equal(t NodeSet) bool {
	if len(s) != len(t) {
		return false
	}
	for n := range s {
		if !t.Contains(n) {
			return false
		}
	}
	return true
}

// Union returns the elements in a or b.
func Union(a, b NodeSet) NodeSet {
	u := make(NodeSet, len(a)+len(b))
	for n := range a {
		u[n] = struct{}{}
	}
	for n := range b {
		u[n] = struct{}{}
	}
	return u
}

// Intersection returns the elements in both a and b.
func Intersection(a, b NodeSet) NodeSet {
	i := make(NodeSet)
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for n := range small {
		if big.Contains(n) {
			i[n] = struct{}{}
		}
	}
	return i
}

// Difference returns the elements in a that are not in b.
func Difference(a, b NodeSet) NodeSet {
	d := make(NodeSet)
	for n := range a {
		if !b.Contains(n) {
			d[n] = struct{}{}
		}
	}
	return d
}

// SymmetricDifference returns the elements in exactly one of a or b.
func SymmetricDifference(a, b NodeSet) NodeSet {
	return Union(Difference(a, b), Difference(b, a))
}

// PickAny returns an arbitrary member of s and true, or the zero Node
// and false if s is empty. Selection is deterministic (the smallest
// element) so that callers get reproducible behavior.
func PickAny(s NodeSet) (Node, bool) {
	if len(s) == 0 {
		return 0, false
	}
	sl := s.Slice()
	return sl[0], true
}

// Powerset eagerly enumerates every subset of s, including the empty
// set and s itself. The caller is expected to restrict the size of s
// before calling, since the result has 2^|s| elements.
func Powerset(s NodeSet) []NodeSet {
	elems := s.Slice()
	n := len(elems)
	out := make([]NodeSet, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		sub := make(NodeSet)
		for i, e := range elems {
			if mask&(1<<uint(i)) != 0 {
				sub[e] = struct{}{}
			}
		}
		out = append(out, sub)
	}
	return out
}
