// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package id

import (
	"github.com/leo-ware/pqp/form"
	"github.com/leo-ware/pqp/graph"
	"github.com/leo-ware/pqp/set"
)

// IDNoSimplify identifies P(y | do(x)) in model, returning the raw,
// unsimplified estimand tree. If model has any observed variables, the
// query is answered by Bayes conditioning: the hidden model is solved
// for y union the observed set, then divided by its own marginal over
// y.
func IDNoSimplify(model graph.Model, y, x set.NodeSet) form.Form {
	observed := model.Observed()
	if observed.Len() == 0 {
		return recID(model, y, x, model.P())
	}

	hidden := model.Hide(observed)
	pPrime := recID(hidden, set.Union(y, observed), x, hidden.P())
	return form.Quotient(pPrime, form.Marginal(y, pPrime))
}

// ID identifies P(y | do(x)) in model and simplifies the result.
func ID(model graph.Model, y, x set.NodeSet) form.Form {
	return form.Simplify(IDNoSimplify(model, y, x))
}

// recID is the recursive core of the Shpitser & Pearl algorithm: given
// a model, an outcome set y, a treatment set x, and the current
// distribution p (initially model.P()), it returns the identifying
// Form or form.Hedge.
func recID(model graph.Model, y, x set.NodeSet, p form.Form) form.Form {
	v := model.Nodes()

	// Step 1: no treatment, marginalize out everything but y.
	if x.Len() == 0 {
		return form.Marginal(set.Difference(v, y), p)
	}

	// Step 2: restrict to ancestors of y.
	ancestorsYInc := model.AncestorsSetInc(y)
	if !v.Equal(ancestorsYInc) {
		sub := model.Subgraph(ancestorsYInc)
		return recID(
			sub,
			y,
			set.Intersection(x, ancestorsYInc),
			form.Marginal(set.Difference(v, ancestorsYInc), p),
		)
	}

	// Step 3: force vacuous interventions.
	aYDoX := model.Do(x).AncestorsSet(y)
	w := set.Difference(v, set.Union(x, set.Union(aYDoX, y)))
	if w.Len() != 0 {
		return recID(model, y, set.Union(x, w), p)
	}

	// Step 4: c-component factorization of the problem under do(x).
	lessX := model.Subgraph(set.Difference(v, x))
	componentsLessX := lessX.Confounded().CComponents()

	if len(componentsLessX) > 1 {
		var factors []form.Form
		for _, si := range componentsLessX {
			factors = append(factors, recID(model, si, set.Difference(v, si), p))
		}
		return form.Marginal(
			set.Difference(v, set.Union(y, x)),
			form.Product(factors),
		)
	}

	// Step 5: hedge test.
	componentsFull := model.Confounded().CComponents()
	if len(componentsFull) == 1 {
		return form.Hedge
	}

	// Steps 6/7.
	s := componentsLessX[0]
	order := model.OrderVec()
	for _, sPrime := range componentsFull {
		if set.Difference(s, sPrime).Len() != 0 {
			continue
		}

		// Step 6: isolated c-component, condition and win.
		if s.Len() == sPrime.Len() {
			return form.Marginal(
				set.Difference(s, y),
				form.FactorizeSubset(order, p, s),
			)
		}

		// Step 7: partition x into confounded and unconfounded.
		return recID(
			model.Subgraph(sPrime),
			y,
			set.Intersection(x, sPrime),
			form.FactorizeSubset(order, p, sPrime),
		)
	}

	panic("id: assumptions violated, no c-component containing s found")
}
