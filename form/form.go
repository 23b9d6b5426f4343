// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package form

import (
	"sort"

	"github.com/leo-ware/pqp/set"
)

// Tag discriminates the five cases of Form.
type Tag int8

const (
	TagMarginal Tag = iota
	TagProduct
	TagQuotient
	TagP
	TagHedge
)

// Form is a tagged recursive expression tree over observational
// probability terms. The zero Form (Tag == TagMarginal, all fields nil)
// is never produced by the constructors below; always build Forms
// through them.
type Form struct {
	Tag Tag

	// Marginal
	Over set.NodeSet
	Body *Form

	// Product
	Factors []Form

	// Quotient
	Numer *Form
	Denom *Form

	// P
	Vars  []set.Node
	Given []set.Node
}

// Hedge is the non-identifiability sentinel.
var Hedge = Form{Tag: TagHedge}

// Marginal builds a summation of body over the node set over.
func Marginal(over set.NodeSet, body Form) Form {
	b := body
	return Form{Tag: TagMarginal, Over: over, Body: &b}
}

// Product builds a multiplicative combination of factors.
func Product(factors []Form) Form {
	return Form{Tag: TagProduct, Factors: factors}
}

// Quotient builds a ratio of numer over denom.
func Quotient(numer, denom Form) Form {
	n, d := numer, denom
	return Form{Tag: TagQuotient, Numer: &n, Denom: &d}
}

// Prob builds the unconditional joint probability term P(vars).
func Prob(vars []set.Node) Form {
	return Form{Tag: TagP, Vars: vars, Given: nil}
}

// CondProb builds the conditional probability term P(vars | given).
func CondProb(vars, given []set.Node) Form {
	return Form{Tag: TagP, Vars: vars, Given: given}
}

// One is the empty-variable probability term P(), the multiplicative
// identity.
func One() Form {
	return Prob(nil)
}

// Free returns the set of variables referenced by f.
func Free(f Form) set.NodeSet {
	switch f.Tag {
	case TagMarginal:
		return set.Difference(Free(*f.Body), f.Over)
	case TagQuotient:
		return set.Union(Free(*f.Numer), Free(*f.Denom))
	case TagP:
		s := make(set.NodeSet, len(f.Vars)+len(f.Given))
		for _, n := range f.Vars {
			s.Add(n)
		}
		for _, n := range f.Given {
			s.Add(n)
		}
		return s
	case TagProduct:
		s := make(set.NodeSet)
		for _, factor := range f.Factors {
			for n := range Free(factor) {
				s.Add(n)
			}
		}
		return s
	default: // TagHedge
		return set.NodeSet{}
	}
}

// ContainsHedge reports whether any subterm of f is Hedge.
func ContainsHedge(f Form) bool {
	switch f.Tag {
	case TagMarginal:
		return ContainsHedge(*f.Body)
	case TagProduct:
		for _, factor := range f.Factors {
			if ContainsHedge(factor) {
				return true
			}
		}
		return false
	case TagQuotient:
		return ContainsHedge(*f.Numer) || ContainsHedge(*f.Denom)
	case TagP:
		return false
	default: // TagHedge
		return true
	}
}

// Map applies func bottom-up: it maps every child Form first,
// reconstructs the node from the mapped children, then applies func to
// the result.
func Map(f Form, fn func(Form) Form) Form {
	var mapped Form
	switch f.Tag {
	case TagMarginal:
		mapped = Marginal(f.Over, Map(*f.Body, fn))
	case TagProduct:
		factors := make([]Form, len(f.Factors))
		for i, factor := range f.Factors {
			factors[i] = Map(factor, fn)
		}
		mapped = Product(factors)
	case TagQuotient:
		mapped = Quotient(Map(*f.Numer, fn), Map(*f.Denom, fn))
	default:
		mapped = f
	}
	return fn(mapped)
}

// compareNodes lexicographically compares two Node slices.
func compareNodes(a, b []set.Node) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// compareForms lexicographically compares two Form slices using Compare.
func compareForms(a, b []Form) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Compare imposes the canonical ordering used by Sorted: Marginal <
// Product < Quotient < P < Hedge across types, and a type-specific
// comparison within a type.
func Compare(a, b Form) int {
	if a.Tag != b.Tag {
		if a.Tag < b.Tag {
			return -1
		}
		return 1
	}

	switch a.Tag {
	case TagMarginal:
		if len(a.Over) != len(b.Over) {
			if len(a.Over) < len(b.Over) {
				return -1
			}
			return 1
		}
		return Compare(*a.Body, *b.Body)
	case TagProduct:
		return compareForms(a.Factors, b.Factors)
	case TagQuotient:
		if c := Compare(*a.Numer, *b.Numer); c != 0 {
			return c
		}
		return Compare(*a.Denom, *b.Denom)
	case TagP:
		if c := compareNodes(a.Vars, b.Vars); c != 0 {
			return c
		}
		return compareNodes(a.Given, b.Given)
	default: // TagHedge
		return 0
	}
}

// Sorted recursively canonicalizes f: within a Product the factors are
// sorted, and within a P the vars and given sequences are each sorted.
// Marginal and Quotient recurse without reordering their own structure,
// and sets have no order and are left as-is.
func Sorted(f Form) Form {
	switch f.Tag {
	case TagMarginal:
		return Marginal(f.Over, Sorted(*f.Body))
	case TagProduct:
		factors := make([]Form, len(f.Factors))
		for i, factor := range f.Factors {
			factors[i] = Sorted(factor)
		}
		sort.Slice(factors, func(i, j int) bool {
			return Compare(factors[i], factors[j]) < 0
		})
		return Product(factors)
	case TagQuotient:
		return Quotient(Sorted(*f.Numer), Sorted(*f.Denom))
	case TagP:
		vars := append([]set.Node(nil), f.Vars...)
		given := append([]set.Node(nil), f.Given...)
		sort.Sort(set.NodeList(vars))
		sort.Sort(set.NodeList(given))
		return CondProb(vars, given)
	default: // TagHedge
		return f
	}
}

// Equal is deep structural equality between two already-canonicalized
// Forms (see StructuralEq for the general case).
func Equal(a, b Form) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagMarginal:
		return a.Over.Equal(b.Over) && Equal(*a.Body, *b.Body)
	case TagProduct:
		if len(a.Factors) != len(b.Factors) {
			return false
		}
		for i := range a.Factors {
			if !Equal(a.Factors[i], b.Factors[i]) {
				return false
			}
		}
		return true
	case TagQuotient:
		return Equal(*a.Numer, *b.Numer) && Equal(*a.Denom, *b.Denom)
	case TagP:
		return nodesEqual(a.Vars, b.Vars) && nodesEqual(a.Given, b.Given)
	default: // TagHedge
		return true
	}
}

func nodesEqual(a, b []set.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// StructuralEq reports whether a and b are equal after canonical
// sorting of both sides. This is how tests check equivalence of two
// Forms that may differ only in commutative/associative ordering.
func StructuralEq(a, b Form) bool {
	return Equal(Sorted(a), Sorted(b))
}

// CondExpand recursively replaces every P(vars, given) with
// Quotient(P(vars ∪ given, ∅), P(given, ∅)). It is used after
// simplification to get a canonical form for equality tests.
func CondExpand(f Form) Form {
	return Map(f, func(g Form) Form {
		if g.Tag != TagP {
			return g
		}
		joint := append(append([]set.Node(nil), g.Vars...), g.Given...)
		return Quotient(Prob(joint), Prob(g.Given))
	})
}

// FactorizeSubset finds P(subset | pred(subset)) in terms of p, where
// pred(x) is the predecessors of x in order. For each position i with
// node v_i in subset, let pred be the nodes at position i and earlier,
// unbound be the free variables of p not in pred or {v_i}; the emitted
// term is Marginal(unbound, p) / Marginal(unbound ∪ {v_i}, p). The full
// factorization multiplies these terms over the subset.
func FactorizeSubset(order []set.Node, p Form, subset set.NodeSet) Form {
	free := Free(p)
	var terms []Form

	for i, vi := range order {
		if !subset.Contains(vi) {
			continue
		}
		pred := set.FromSlice(order[:i+1])
		v := set.NewNodeSet(vi)
		unbound := set.Difference(free, set.Union(pred, v))
		term := Quotient(
			Marginal(unbound, p),
			Marginal(set.Union(unbound, v), p),
		)
		terms = append(terms, term)
	}

	return Product(terms)
}

// Factorize factorizes p with respect to the full order.
func Factorize(order []set.Node, p Form) Form {
	return FactorizeSubset(order, p, set.FromSlice(order))
}
