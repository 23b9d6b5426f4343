// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package form_test

import (
	"testing"

	"github.com/leo-ware/pqp/form"
	"github.com/leo-ware/pqp/set"
)

func TestFreeVariables(t *testing.T) {
	p := form.CondProb([]set.Node{1, 2}, []set.Node{3})
	got := form.Free(p)
	want := set.NewNodeSet(1, 2, 3)
	if !got.Equal(want) {
		t.Errorf("Free(%v) = %v, want %v", p, got, want)
	}

	m := form.Marginal(set.NewNodeSet(2), p)
	got = form.Free(m)
	want = set.NewNodeSet(1, 3)
	if !got.Equal(want) {
		t.Errorf("Free(Marginal) = %v, want %v", got, want)
	}
}

func TestContainsHedge(t *testing.T) {
	if form.ContainsHedge(form.One()) {
		t.Errorf("One() should not contain Hedge")
	}
	prod := form.Product([]form.Form{form.One(), form.Hedge})
	if !form.ContainsHedge(prod) {
		t.Errorf("Product containing Hedge should report true")
	}
}

func TestStructuralEqIgnoresFactorOrder(t *testing.T) {
	a := form.Prob([]set.Node{1})
	b := form.Prob([]set.Node{2})
	p1 := form.Product([]form.Form{a, b})
	p2 := form.Product([]form.Form{b, a})
	if !form.StructuralEq(p1, p2) {
		t.Errorf("Product factor order should not matter for StructuralEq")
	}
}

func TestSortedSortsVarsAndGiven(t *testing.T) {
	p := form.CondProb([]set.Node{3, 1, 2}, []set.Node{5, 4})
	got := form.Sorted(p)
	wantVars := []set.Node{1, 2, 3}
	wantGiven := []set.Node{4, 5}
	for i, n := range wantVars {
		if got.Vars[i] != n {
			t.Errorf("Sorted vars = %v, want %v", got.Vars, wantVars)
		}
	}
	for i, n := range wantGiven {
		if got.Given[i] != n {
			t.Errorf("Sorted given = %v, want %v", got.Given, wantGiven)
		}
	}
}

func TestCondExpand(t *testing.T) {
	p := form.CondProb([]set.Node{1}, []set.Node{2})
	got := form.CondExpand(p)
	if got.Tag != form.TagQuotient {
		t.Fatalf("CondExpand(P(1|2)).Tag = %v, want TagQuotient", got.Tag)
	}
	if got.Numer.Tag != form.TagP || len(got.Numer.Vars) != 2 {
		t.Errorf("CondExpand numerator = %v, want P(1,2)", got.Numer)
	}
	if got.Denom.Tag != form.TagP || len(got.Denom.Vars) != 1 || got.Denom.Vars[0] != 2 {
		t.Errorf("CondExpand denominator = %v, want P(2)", got.Denom)
	}
}

func TestFactorizeSubset(t *testing.T) {
	order := []set.Node{1, 2, 3}
	p := form.Prob(order)
	got := form.FactorizeSubset(order, p, set.NewNodeSet(2, 3))
	if got.Tag != form.TagProduct || len(got.Factors) != 2 {
		t.Fatalf("FactorizeSubset = %v, want a Product of 2 terms", got)
	}
	for _, f := range got.Factors {
		if f.Tag != form.TagQuotient {
			t.Errorf("factor %v should be a Quotient", f)
		}
	}
}
