// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package form

import (
	"sort"

	"github.com/leo-ware/pqp/set"
)

// simplifyMarginal reduces a single Marginal node. A nested Marginal is
// merged into it and the merged node is reduced again; otherwise it does
// not recurse into the body, and callers that need a fixed point use
// simplifyForm.
func simplifyMarginal(f Form) Form {
	if f.Tag != TagMarginal {
		return f
	}
	body := *f.Body

	if len(f.Over) == 0 {
		return body
	}

	if body.Tag == TagMarginal {
		return simplifyMarginal(Marginal(set.Union(f.Over, body.Over), *body.Body))
	}

	if body.Tag == TagP {
		varsSet := set.FromSlice(body.Vars)
		newOver := set.Difference(f.Over, varsSet)
		newVars := set.Difference(varsSet, f.Over)
		newP := CondProb(newVars.Slice(), body.Given)
		if len(newOver) != 0 {
			return Marginal(newOver, newP)
		}
		return newP
	}

	return f
}

// flattenProduct recursively unfolds exp into the numerator and
// denominator accumulators: a Quotient child contributes its numerator
// to num and its denominator to den; a nested Product is fully
// flattened (a strict improvement over only unwrapping one level); any
// other factor is appended to num unless it is the multiplicative
// identity.
func flattenProduct(exp Form, num, den *[]Form) {
	switch exp.Tag {
	case TagQuotient:
		*num = append(*num, *exp.Numer)
		*den = append(*den, *exp.Denom)
	case TagProduct:
		for _, sub := range exp.Factors {
			flattenProduct(sub, num, den)
		}
	default:
		if !Equal(exp, One()) {
			*num = append(*num, exp)
		}
	}
}

// collapseFactors turns a factor list into a single Form: the empty
// list collapses to One, a singleton to its element, anything else to
// a Product.
func collapseFactors(factors []Form) Form {
	switch len(factors) {
	case 0:
		return One()
	case 1:
		return factors[0]
	default:
		return Product(factors)
	}
}

// simplifyProduct reduces a single Product node one step: nested
// Products are fully flattened and unit factors dropped. The numerator
// and denominator of a Quotient factor are taken over as whole factors
// and are not flattened here, so they may still be Products.
func simplifyProduct(f Form) Form {
	if f.Tag != TagProduct {
		return f
	}

	var num, den []Form
	for _, factor := range f.Factors {
		flattenProduct(factor, &num, &den)
	}

	nSimple := collapseFactors(num)
	dSimple := collapseFactors(den)

	if Equal(dSimple, One()) {
		return nSimple
	}
	return Quotient(nSimple, dSimple)
}

// sortFormSlice sorts a slice of already-Sorted Forms by Compare.
func sortFormSlice(fs []Form) {
	sort.Slice(fs, func(i, j int) bool {
		return Compare(fs[i], fs[j]) < 0
	})
}

// asFactors extracts the factor list of a Product, or wraps a
// non-Product Form as a singleton list.
func asFactors(f Form) []Form {
	if f.Tag == TagProduct {
		return f.Factors
	}
	return []Form{f}
}

// cancelSorted performs a merge-style sweep over two sorted Form
// slices, removing one shared occurrence at a time for every pair of
// structurally identical elements.
func cancelSorted(a, b []Form) (aOut, bOut []Form) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := Compare(a[i], b[j]); {
		case c < 0:
			aOut = append(aOut, a[i])
			i++
		case c > 0:
			bOut = append(bOut, b[j])
			j++
		default:
			i++
			j++
		}
	}
	aOut = append(aOut, a[i:]...)
	bOut = append(bOut, b[j:]...)
	return aOut, bOut
}

// simplifyQuotient reduces a single Quotient node one step: nested
// quotients are collapsed ((a/b)/(c/d) -> (a*d)/(b*c)), then numerator
// and denominator factor lists are sorted and pairwise-cancelled.
func simplifyQuotient(f Form) Form {
	if f.Tag != TagQuotient {
		return f
	}

	topNumer, topDenom := *f.Numer, One()
	if f.Numer.Tag == TagQuotient {
		topNumer, topDenom = *f.Numer.Numer, *f.Numer.Denom
	}

	bottomNumer, bottomDenom := *f.Denom, One()
	if f.Denom.Tag == TagQuotient {
		bottomNumer, bottomDenom = *f.Denom.Numer, *f.Denom.Denom
	}

	collapsedNumer := Sorted(simplifyProduct(Product([]Form{topNumer, bottomDenom})))
	collapsedDenom := Sorted(simplifyProduct(Product([]Form{topDenom, bottomNumer})))

	numerVec := append([]Form(nil), asFactors(collapsedNumer)...)
	denomVec := append([]Form(nil), asFactors(collapsedDenom)...)
	sortFormSlice(numerVec)
	sortFormSlice(denomVec)

	numerDedup, denomDedup := cancelSorted(numerVec, denomVec)
	numerSimple := simplifyProduct(Product(numerDedup))
	denomSimple := simplifyProduct(Product(denomDedup))

	if Equal(denomSimple, One()) {
		return numerSimple
	}
	return Quotient(numerSimple, denomSimple)
}

// simplifyForm applies the variant-specific local rewrite to f. If the
// rewrite changed the top-level variant tag, the new node may admit
// further rewriting, so simplifyForm recurses; otherwise it returns.
func simplifyForm(f Form) Form {
	tag := f.Tag
	var once Form
	switch tag {
	case TagProduct:
		once = simplifyProduct(f)
	case TagQuotient:
		once = simplifyQuotient(f)
	case TagMarginal:
		once = simplifyMarginal(f)
	default:
		once = f
	}
	if once.Tag == tag {
		return once
	}
	return simplifyForm(once)
}

// Simplify rewrites f to a fixed point: Hedge absorbs through any
// subterm, Marginals flatten and cancel into their bodies, Products
// flatten and drop unit factors, and Quotients collapse nesting and
// cancel matching factors. The result is canonically sorted.
func Simplify(f Form) Form {
	if ContainsHedge(f) {
		return Hedge
	}
	return Sorted(Map(f, simplifyForm))
}
